package apiclient

import (
	"context"
	"net/http"

	"github.com/hotelhub/hotel-booking/internal/domain/envelope"
	"github.com/hotelhub/hotel-booking/internal/domain/user"
)

const (
	msgUserNotFound = "User not found."
	msgNoUsers      = "No users found."
)

// UserAPI wraps the read side of the user service.
type UserAPI struct {
	client *Client
}

func NewUserAPI(client *Client) *UserAPI {
	return &UserAPI{client: client}
}

func (a *UserAPI) FetchUser(ctx context.Context, id int64) (user.User, error) {
	const op = "fetch_user"
	env, err := send[envelope.Envelope[user.User]](ctx, a.client, call{
		op:         op,
		method:     http.MethodGet,
		route:      "/users/{id}",
		pathParams: map[string]string{"id": idParam(id)},
	})
	if err != nil {
		return user.User{}, err
	}
	return unwrapData(a.client, op, &env, msgUserNotFound)
}

// FetchUsers lists all accounts. An envelope without data is an error here,
// unlike the other list endpoints.
func (a *UserAPI) FetchUsers(ctx context.Context) ([]user.User, error) {
	const op = "fetch_users"
	env, err := send[envelope.Envelope[[]user.User]](ctx, a.client, call{
		op:     op,
		method: http.MethodGet,
		route:  "/users",
	})
	if err != nil {
		return nil, err
	}
	return unwrapData(a.client, op, &env, msgNoUsers)
}
