package userControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anurag-b72/ecommerce-shopping-backend/store"
	"github.com/anurag-b72/ecommerce-shopping-backend/store/memstore"
)

func newRouter(stores store.Stores) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/user/user-register", RegisterUser(stores.Users))
	r.GET("/user/user-login", LoginUser(stores.Users))
	r.GET("/user/my-profile", MyProfile(stores.Users))
	r.PUT("/user/update-user/:user_id", UpdateUser(stores.Users))
	return r
}

func doJSON(r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterUser(t *testing.T) {
	stores := memstore.New()
	r := newRouter(stores)

	w := doJSON(r, http.MethodPost, "/user/user-register",
		`{"first_name":"Asha","phone":"9876543210","password":"pass1234"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "New User Registered.", resp["message"])
	assert.Len(t, resp["user_id"], 24)

	user, err := stores.Users.FindByID(context.Background(), resp["user_id"])
	require.NoError(t, err)
	assert.Equal(t, "9876543210", user.Phone)
	// Stored password is a digest, never the plaintext.
	assert.NotEqual(t, "pass1234", user.Password)
	assert.Empty(t, user.Cart)
}

func TestRegisterUserPhoneLength(t *testing.T) {
	stores := memstore.New()
	r := newRouter(stores)

	w := doJSON(r, http.MethodPost, "/user/user-register",
		`{"phone":"12345","password":"pass1234"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Phone Number should be 10 digits.")

	users, err := stores.Users.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRegisterUserDuplicatePhone(t *testing.T) {
	stores := memstore.New()
	r := newRouter(stores)

	w := doJSON(r, http.MethodPost, "/user/user-register",
		`{"phone":"9876543210","password":"pass1234"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/user/user-register",
		`{"phone":"9876543210","password":"other-pass"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists!")

	users, err := stores.Users.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLoginUser(t *testing.T) {
	stores := memstore.New()
	r := newRouter(stores)

	w := doJSON(r, http.MethodPost, "/user/user-register",
		`{"first_name":"Asha","phone":"9876543210","password":"pass1234"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/user/user-login?phone=9876543210&password=pass1234", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome Asha")

	w = doJSON(r, http.MethodGet, "/user/user-login?phone=9876543210&password=nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Wrong Password!")

	w = doJSON(r, http.MethodGet, "/user/user-login?phone=0000000000&password=pass1234", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Wrong Phone or Password")
}

func TestMyProfileUnknownUser(t *testing.T) {
	stores := memstore.New()
	r := newRouter(stores)

	w := doJSON(r, http.MethodGet, "/user/my-profile?user_id=6528a1d4b2f9c3e7a0d1f2e3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not registered!")
}

func TestUpdateUserPartialPatch(t *testing.T) {
	stores := memstore.New()
	r := newRouter(stores)

	w := doJSON(r, http.MethodPost, "/user/user-register",
		`{"first_name":"Asha","phone":"9876543210","password":"pass1234","email":"asha@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	userID := resp["user_id"]

	w = doJSON(r, http.MethodPut, "/user/update-user/"+userID, `{"first_name":"Usha"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User Details Updated")

	user, err := stores.Users.FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Usha", user.FirstName)
	// Untouched fields survive a partial patch.
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "9876543210", user.Phone)
}

func TestUpdateUserDuplicatePhone(t *testing.T) {
	stores := memstore.New()
	r := newRouter(stores)

	w := doJSON(r, http.MethodPost, "/user/user-register",
		`{"phone":"9876543210","password":"pass1234"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	userID := resp["user_id"]

	w = doJSON(r, http.MethodPost, "/user/user-register",
		`{"phone":"1234567890","password":"pass1234"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPut, "/user/update-user/"+userID, `{"phone":"1234567890"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Phone Number already registered to a different user.")

	// Updating to the user's own phone is allowed.
	w = doJSON(r, http.MethodPut, "/user/update-user/"+userID, `{"phone":"9876543210"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
