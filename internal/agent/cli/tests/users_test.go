package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-userdir/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/models"
)

// поднимаем фейковый сервер и прогоняем команду через root
func runCommand(t *testing.T, handler http.Handler, args ...string) (string, error) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cmd := cli.NewRootCmd("test", "today")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append(args, "--server", srv.URL))

	err := cmd.Execute()
	return out.String(), err
}

func TestListCmd_PrintsUsers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.User{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
		})
	})

	out, err := runCommand(t, handler, "list")
	require.NoError(t, err)
	require.Contains(t, out, "Alice")
	require.Contains(t, out, "alice@example.com")
}

func TestGetCmd_RequiresID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	_, err := runCommand(t, handler, "get")
	require.Error(t, err)
}

func TestGetCmd_NotFoundSurfacesServerText(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "User with ID 99 not found", http.StatusNotFound)
	})

	_, err := runCommand(t, handler, "get", "--id", "99")
	require.Error(t, err)
	require.Contains(t, err.Error(), "User with ID 99 not found")
}

func TestCreateCmd_PrintsAssignedID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.User{ID: 3, Name: "Carol", Email: "carol@example.com"})
	})

	out, err := runCommand(t, handler, "create", "--name", "Carol", "--email", "carol@example.com")
	require.NoError(t, err)
	require.Contains(t, out, "created user 3")
}

func TestVersionCmd(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	out, err := runCommand(t, handler, "version")
	require.NoError(t, err)
	require.Contains(t, out, "userdir test")
}
