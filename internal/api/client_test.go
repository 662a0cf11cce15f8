package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"property-portal/internal/model"
	"property-portal/pkg/apierror"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return New(server.URL, 5*time.Second), server
}

func TestCustomerLogin(t *testing.T) {
	t.Parallel()

	t.Run("returns the issued access token", func(t *testing.T) {
		var gotBody model.LoginRequest
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/customer-login", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NotEmpty(t, r.Header.Get("X-Request-ID"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			_ = json.NewEncoder(w).Encode(model.LoginResponse{AccessToken: "issued-token"})
		}))
		defer server.Close()

		accessToken, err := client.CustomerLogin(context.Background(), "somchai", "hunter2")
		require.NoError(t, err)
		require.Equal(t, "issued-token", accessToken)
		require.Equal(t, "somchai", gotBody.Username)
	})

	t.Run("extracts the upstream error message", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
		}))
		defer server.Close()

		_, err := client.CustomerLogin(context.Background(), "somchai", "wrong")
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatus)
		require.Equal(t, "Invalid credentials", apiErr.Message)
	})

	t.Run("rejects a success response without a token", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := client.CustomerLogin(context.Background(), "somchai", "hunter2")
		require.Error(t, err)
	})
}

func TestFavoritesEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("list carries the bearer token", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer customer-token", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`[3,7]`))
		}))
		defer server.Close()

		ids, err := client.Favorites(context.Background(), "customer-token")
		require.NoError(t, err)
		require.Equal(t, []int64{3, 7}, ids)
	})

	t.Run("add conflict is distinguishable", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Already in favorites"})
		}))
		defer server.Close()

		err := client.AddFavorite(context.Background(), "customer-token", 5)
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.True(t, apiErr.IsConflict())
		require.Equal(t, "Already in favorites", apiErr.Message)
	})

	t.Run("remove targets the id path", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/api/customer/favorites/12", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		require.NoError(t, client.RemoveFavorite(context.Background(), "customer-token", 12))
	})
}

func TestProperties(t *testing.T) {
	t.Parallel()

	t.Run("encodes only the set filters", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			require.Equal(t, "2", query.Get("page"))
			require.Equal(t, "pool", query.Get("keyword"))
			require.Equal(t, "1000000", query.Get("maxPrice"))
			require.False(t, query.Has("minPrice"))
			require.False(t, query.Has("status"))

			_ = json.NewEncoder(w).Encode(PropertyList{
				Properties: []model.Property{{ID: 1, Title: "Villa"}},
				Pagination: Pagination{CurrentPage: 2, TotalPages: 5, TotalItems: 42},
			})
		}))
		defer server.Close()

		list, err := client.Properties(context.Background(), model.PropertyFilter{
			Page:     2,
			Keyword:  "pool",
			MaxPrice: 1000000,
		})
		require.NoError(t, err)
		require.Len(t, list.Properties, 1)
		require.Equal(t, 42, list.Pagination.TotalItems)
	})

	t.Run("unreachable upstream maps to a gateway error", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := client.FeaturedProperties(context.Background())
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus)
	})
}

func TestAdminEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("stats carries the admin token", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
			require.Equal(t, "/api/admin/stats", r.URL.Path)
			_ = json.NewEncoder(w).Encode(model.DashboardStats{TotalProperties: 10, ForSale: 4})
		}))
		defer server.Close()

		stats, err := client.Stats(context.Background(), "admin-token")
		require.NoError(t, err)
		require.Equal(t, int64(10), stats.TotalProperties)
	})

	t.Run("close deal posts to the deal path", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/admin/properties/9/close-deal", r.URL.Path)

			var deal model.CloseDealRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&deal))
			require.Equal(t, model.DealSold, deal.TransactionType)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := client.CloseDeal(context.Background(), "admin-token", 9, model.CloseDealRequest{
			TransactionType: model.DealSold,
			FinalPrice:      12000000,
		})
		require.NoError(t, err)
	})
}

func TestAdminUsers(t *testing.T) {
	t.Parallel()

	t.Run("list carries the admin token", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/api/admin/users", r.URL.Path)
			require.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

			_ = json.NewEncoder(w).Encode([]model.User{
				{ID: 1, Username: "boss", Email: "boss@example.com", Role: "admin"},
				{ID: 2, Username: "somchai", Email: "somchai@example.com", Role: "user"},
			})
		}))
		defer server.Close()

		users, err := client.Users(context.Background(), "admin-token")
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, "somchai", users[1].Username)
	})

	t.Run("delete targets the id path", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/api/admin/users/2", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		require.NoError(t, client.DeleteUser(context.Background(), "admin-token", 2))
	})
}

func TestProfileEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("get carries the bearer token", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/api/users/profile", r.URL.Path)
			require.Equal(t, "Bearer customer-token", r.Header.Get("Authorization"))

			_ = json.NewEncoder(w).Encode(model.UserProfile{ID: 42, Username: "somchai", Email: "somchai@example.com"})
		}))
		defer server.Close()

		profile, err := client.Profile(context.Background(), "customer-token")
		require.NoError(t, err)
		require.Equal(t, "somchai", profile.Username)
	})

	t.Run("update puts the editable fields", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			require.Equal(t, "/api/users/profile", r.URL.Path)

			var req model.UpdateProfileRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "somchai", req.Username)
			require.Equal(t, "081-234-5678", req.Phone)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := client.UpdateProfile(context.Background(), "customer-token", model.UpdateProfileRequest{
			Username: "somchai",
			Email:    "somchai@example.com",
			Phone:    "081-234-5678",
		})
		require.NoError(t, err)
	})

	t.Run("change password puts both fields", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			require.Equal(t, "/api/users/change-password", r.URL.Path)

			var req model.ChangePasswordRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "hunter2", req.CurrentPassword)
			require.Equal(t, "hunter33", req.NewPassword)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		require.NoError(t, client.ChangePassword(context.Background(), "customer-token", "hunter2", "hunter33"))
	})
}

func TestRateLimitRespectsContext(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// One request per minute with burst 1: the second call must wait,
	// and a cancelled context aborts the wait instead of blocking.
	WithRateLimit(1)(client)

	require.NoError(t, client.AddFavorite(context.Background(), "t", 1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.Error(t, client.AddFavorite(ctx, "t", 2))
}
