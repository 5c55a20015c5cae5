// CLI-команды списка, получения и создания пользователей
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-userdir/internal/agent/api"
)

// для тестов
var NewAPIClient = api.NewClient

// NewListCmd создаёт CLI-команду вывода всех пользователей.
//
// Пример использования:
//
//	userdir list
func NewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список всех пользователей",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			users, err := c.ListUsers()
			if err != nil {
				return err
			}
			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", u.ID, u.Name, u.Email)
			}
			return nil
		},
	}
}

// NewGetCmd создаёт CLI-команду получения пользователя по id.
//
// Обязательный флаг --id.
//
// Пример использования:
//
//	userdir get --id 3
func NewGetCmd(app *App) *cobra.Command {
	var id uint32

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Получить пользователя по id",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			u, err := c.GetUser(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", u.ID, u.Name, u.Email)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&id, "id", 0, "user id")
	cmd.MarkFlagRequired("id")

	return cmd
}

// NewCreateCmd создаёт CLI-команду создания нового пользователя.
//
// Обязательные флаги --name и --email. Идентификатор выдаёт сервер.
//
// Пример использования:
//
//	userdir create --name Carol --email carol@example.com
func NewCreateCmd(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать нового пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			u, err := c.CreateUser(name, email)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d\n", u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}
