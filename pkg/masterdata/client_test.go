package masterdata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)
	return client, server
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestClient_List(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/master/brand", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]string{
				{"_id": "b1", "name": "Ray-Ban"},
				{"_id": "b2", "name": "Oakley"},
			},
		})
	})

	result := client.List(context.Background(), "BRAND")

	require.True(t, result.Success)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "b1", result.Data[0].ID)
	assert.Equal(t, "Ray-Ban", result.Data[0].Name)
	assert.Empty(t, result.Message)
}

func TestClient_List_DocsWrapper(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"docs": []map[string]string{{"_id": "t1", "name": "GST 12%", "value": "12"}},
			},
		})
	})

	result := client.List(context.Background(), "tax")

	require.True(t, result.Success)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "12", result.Data[0].Value)
}

func TestClient_List_UnknownType(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	result := client.List(context.Background(), "frameColor")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "frameColor")
	assert.False(t, called, "an unknown type must fail before any request is sent")

	var confErr *ConfigurationError
	assert.ErrorAs(t, result.Err, &confErr)
}

func TestClient_List_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	result := client.List(context.Background(), "brand")

	assert.False(t, result.Success)
	assert.Equal(t, "No response from server", result.Message)
	assert.Error(t, result.Err)
}

func TestClient_List_ServerErrorStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "500 with envelope message",
			status:      http.StatusInternalServerError,
			body:        `{"success":false,"message":"Database unavailable"}`,
			wantMessage: "Database unavailable",
		},
		{
			name:        "502 with non-JSON body",
			status:      http.StatusBadGateway,
			body:        "<html>Bad Gateway</html>",
			wantMessage: "Server returned status 502",
		},
		{
			name:        "404 with empty body",
			status:      http.StatusNotFound,
			body:        "",
			wantMessage: "Server returned status 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			result := client.List(context.Background(), "brand")

			assert.False(t, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Error(t, result.Err)
		})
	}
}

func TestClient_List_ApplicationFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Attribute not found",
		})
	})

	result := client.List(context.Background(), "brand")

	assert.False(t, result.Success)
	assert.Equal(t, "Attribute not found", result.Message)
}

func TestClient_Create(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/master/tax", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "GST 18%", body["name"])
		assert.Equal(t, "18", body["value"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Created successfully",
		})
	})

	result := client.Create(context.Background(), "tax", map[string]interface{}{
		"name":  "GST 18%",
		"value": "18",
	})

	assert.True(t, result.Success)
	assert.Equal(t, "Created successfully", result.Message)
}

func TestClient_Update_SendsIDInBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/master/brand", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "b1", body["_id"])
		assert.Equal(t, "Ray-Ban Updated", body["name"])

		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	result := client.Update(context.Background(), "brand", "b1", map[string]interface{}{
		"name": "Ray-Ban Updated",
	})

	assert.True(t, result.Success)
}

func TestClient_Update_EmptyID(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	result := client.Update(context.Background(), "brand", "", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "Record id is required", result.Message)
	assert.False(t, called)
}

func TestClient_Delete_RefetchesList(t *testing.T) {
	var deletedPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			deletedPath = r.URL.Path
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    []map[string]string{{"_id": "b2", "name": "Oakley"}},
			})
		}
	})

	result := client.Delete(context.Background(), "brand", "b1")

	require.True(t, result.Success)
	assert.Equal(t, "/master/brand/b1", deletedPath)
	require.Len(t, result.UpdatedList, 1)
	assert.Equal(t, "b2", result.UpdatedList[0].ID)
}

func TestClient_Delete_RefetchFails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
		case http.MethodGet:
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Database unavailable",
			})
		}
	})

	result := client.Delete(context.Background(), "brand", "b1")

	// The delete itself succeeded; only the refresh failed.
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "refreshing the list failed")
	assert.Contains(t, result.Message, "Database unavailable")
	assert.Empty(t, result.UpdatedList)
}

func TestClient_Delete_EmptyID(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	result := client.Delete(context.Background(), "brand", "")

	assert.False(t, result.Success)
	assert.Equal(t, "Record id is required", result.Message)
	assert.False(t, called)
}

func TestClient_Delete_ServerRejects(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method, "a failed delete must not trigger a refetch")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Attribute not found",
		})
	})

	result := client.Delete(context.Background(), "brand", "missing")

	assert.False(t, result.Success)
	assert.Equal(t, "Attribute not found", result.Message)
	assert.Empty(t, result.UpdatedList)
}

func TestClient_List_MalformedSuccessBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	result := client.List(context.Background(), "brand")

	assert.False(t, result.Success)
	assert.Equal(t, "Unexpected response from server", result.Message)
}
