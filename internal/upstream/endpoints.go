package upstream

import (
	"net/http"

	"github.com/storeratings/storefront/internal/core/ports"
)

// endpoint describes one backend operation: its wire location, whether the
// bearer credential is attached, and how it interacts with the response
// cache. Queries declare the tags they produce; mutations declare the tags
// they invalidate. The table is the only place this policy lives.
type endpoint struct {
	name        string
	method      string
	path        string
	authed      bool
	produces    []string
	invalidates []string
}

var (
	epRegister = endpoint{
		name:   "register",
		method: http.MethodPost,
		path:   "/api/auth/register",
	}
	epLogin = endpoint{
		name:   "login",
		method: http.MethodPost,
		path:   "/api/auth/login",
	}
	epUpdatePassword = endpoint{
		name:   "update_password",
		method: http.MethodPost,
		path:   "/api/auth/update/password",
		authed: true,
	}
	epCreateStore = endpoint{
		name:        "create_store",
		method:      http.MethodPost,
		path:        "/api/stores/add",
		authed:      true,
		invalidates: []string{ports.TagStores},
	}
	epListStores = endpoint{
		name:     "list_stores",
		method:   http.MethodPost,
		path:     "/api/stores/list",
		authed:   true,
		produces: []string{ports.TagStores},
	}
	epStoresByOwner = endpoint{
		name:     "stores_by_owner",
		method:   http.MethodPost,
		path:     "/api/stores/get",
		authed:   true,
		produces: []string{ports.TagStores},
	}
	epCreateRating = endpoint{
		name:        "create_rating",
		method:      http.MethodPost,
		path:        "/api/ratings/create",
		authed:      true,
		invalidates: []string{ports.TagStores},
	}
	epUpdateRating = endpoint{
		name:        "update_rating",
		method:      http.MethodPost,
		path:        "/api/ratings/update",
		authed:      true,
		invalidates: []string{ports.TagStores},
	}
	epListUsers = endpoint{
		name:     "list_users",
		method:   http.MethodGet,
		path:     "/api/users",
		authed:   true,
		produces: []string{ports.TagUsers},
	}
)
