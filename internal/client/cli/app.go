package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/blogauth/internal/api"
	"github.com/dmitrijs2005/blogauth/internal/client/client"
	"github.com/dmitrijs2005/blogauth/internal/client/config"
	"github.com/dmitrijs2005/blogauth/internal/common"
	pb "github.com/dmitrijs2005/blogauth/internal/proto"
	"google.golang.org/grpc/status"
)

type App struct {
	config  *config.Config
	client  client.Client
	session *pb.SessionResponse
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) printSession() {
	fmt.Fprintf(a.out, "Username:      %s\n", a.session.Username)
	fmt.Fprintf(a.out, "Full name:     %s\n", a.session.Fullname)
	fmt.Fprintf(a.out, "Profile image: %s\n", a.session.ProfileImg)
	fmt.Fprintf(a.out, "Access token:  %s\n", a.session.AccessToken)
}

// hints suggest the next command for errors the user can act on.
var hints = map[string]string{
	common.KindEmailExists:   "Use 'login' to sign in to the existing account.",
	common.KindEmailNotFound: "Use 'register' to create an account.",
}

// errorMessage picks the text shown to the user for a failed call.
func errorMessage(err error) string {
	if errors.Is(err, client.ErrUnavailable) {
		return "Server unavailable, please try again later."
	}
	if st, ok := status.FromError(err); ok {
		if hint, ok := hints[api.ErrorKind(err)]; ok {
			return st.Message() + " " + hint
		}
		return st.Message()
	}
	return err.Error()
}
