// filepath: internal/api/handlers/flower_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"flowershop/internal/config"
	"flowershop/internal/models"
	"flowershop/internal/services"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleFlower(id string) *models.Flower {
	imageURL := "http://localhost:8080/images/flower_abc.jpg"
	return &models.Flower{
		ID:        id,
		Name:      "Rose",
		Price:     50000,
		Type:      "Red",
		Unit:      "bunch",
		Stock:     5,
		ImageURL:  &imageURL,
		CreatedAt: time.Date(2024, 3, 1, 8, 0, 1, 0, time.UTC),
	}
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func TestGetFlowersAPI(t *testing.T) {
	api, cleanup := setupHandlerTestAPI(t, nil)
	defer cleanup()

	t.Run("Defaults", func(t *testing.T) {
		api.flowers.On("ListFlowers", mock.Anything, models.FlowerFilter{Limit: 100}).
			Return([]models.Flower{*sampleFlower("a1")}, nil).Once()

		resp, err := http.Get(api.server.URL + "/flowers")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var list models.FlowerList
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		assert.Equal(t, 1, list.Count)
		assert.Equal(t, "Rose", list.Flowers[0].Name)
	})

	t.Run("All query parameters", func(t *testing.T) {
		expected := models.FlowerFilter{Search: "hồng", Type: "Hồng", Tags: "valentine", LowStock: true, Skip: 5, Limit: 10}
		api.flowers.On("ListFlowers", mock.Anything, expected).Return([]models.Flower{}, nil).Once()

		q := url.Values{}
		q.Set("search", " hồng ")
		q.Set("type", "Hồng")
		q.Set("tags", "valentine")
		q.Set("low_stock", "true")
		q.Set("skip", "5")
		q.Set("limit", "10")
		resp, err := http.Get(api.server.URL + "/flowers?" + q.Encode())
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var list models.FlowerList
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		assert.Equal(t, 0, list.Count)
		assert.NotNil(t, list.Flowers, "an empty page is [] not null")
	})

	t.Run("Invalid paging", func(t *testing.T) {
		for _, query := range []string{"skip=-1", "limit=abc", "low_stock=maybe"} {
			resp, err := http.Get(api.server.URL + "/flowers?" + query)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
		}
	})

	t.Run("Store unavailable", func(t *testing.T) {
		api.flowers.On("ListFlowers", mock.Anything, models.FlowerFilter{Limit: 100}).
			Return(nil, fmt.Errorf("list flowers: %w", services.ErrUnavailable)).Once()

		resp, err := http.Get(api.server.URL + "/flowers")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp), "unavailable")
	})

	api.flowers.AssertExpectations(t)
}

func TestCreateFlowerAPI(t *testing.T) {
	api, cleanup := setupHandlerTestAPI(t, nil)
	defer cleanup()

	fields := map[string]string{"name": "Rose", "price": "50000", "type": "Red", "unit": "bunch", "stock": "5", "tags": "valentine"}
	expected := models.Flower{Name: "Rose", Price: 50000, Type: "Red", Unit: "bunch", Stock: 5, Tags: "valentine"}

	t.Run("Success with image", func(t *testing.T) {
		image := []byte("fake image bytes")
		body, contentType := multipartBody(t, fields, image)

		api.flowers.On("CreateFlower", mock.Anything, expected, image).Return(sampleFlower("a1"), nil).Once()
		api.auditor.On("Log", mock.Anything, "flower.create", "127.0.0.1", "Flower:a1", mock.MatchedBy(func(d map[string]interface{}) bool {
			return d["name"] == "Rose" && d["has_image"] == true
		})).Return().Once()

		resp, err := http.Post(api.server.URL+"/flowers", contentType, body)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var created models.FlowerResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		assert.Equal(t, "Flower created", created.Message)
		assert.Equal(t, "a1", created.Flower.ID)
	})

	t.Run("Urlencoded without image", func(t *testing.T) {
		form := url.Values{}
		for k, v := range fields {
			form.Set(k, v)
		}

		api.flowers.On("CreateFlower", mock.Anything, expected, []byte(nil)).Return(sampleFlower("a2"), nil).Once()
		api.auditor.On("Log", mock.Anything, "flower.create", mock.Anything, "Flower:a2", mock.Anything).Return().Once()

		resp, err := http.PostForm(api.server.URL+"/flowers", form)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Missing required field", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"name": "Rose", "price": "1", "type": "Red"}, nil)

		resp, err := http.Post(api.server.URL+"/flowers", contentType, body)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "missing required field: unit", decodeError(t, resp))
	})

	t.Run("Price is not a number", func(t *testing.T) {
		bad := map[string]string{"name": "Rose", "price": "abc", "type": "Red", "unit": "bunch"}
		body, contentType := multipartBody(t, bad, nil)

		resp, err := http.Post(api.server.URL+"/flowers", contentType, body)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "price must be an integer", decodeError(t, resp))
	})

	t.Run("Service validation error", func(t *testing.T) {
		negative := map[string]string{"name": "Rose", "price": "-5", "type": "Red", "unit": "bunch"}
		body, contentType := multipartBody(t, negative, nil)

		api.flowers.On("CreateFlower", mock.Anything, mock.Anything, []byte(nil)).
			Return(nil, &services.ValidationError{Msg: "price must not be negative"}).Once()

		resp, err := http.Post(api.server.URL+"/flowers", contentType, body)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "price must not be negative", decodeError(t, resp))
	})

	t.Run("Store failure", func(t *testing.T) {
		body, contentType := multipartBody(t, fields, nil)
		api.flowers.On("CreateFlower", mock.Anything, expected, []byte(nil)).
			Return(nil, fmt.Errorf("%w: insert flower: disk I/O error", services.ErrStore)).Once()

		resp, err := http.Post(api.server.URL+"/flowers", contentType, body)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp), "disk I/O error")
	})

	api.flowers.AssertExpectations(t)
	api.auditor.AssertExpectations(t)
}

func TestCreateFlowerTooLarge(t *testing.T) {
	api, cleanup := setupHandlerTestAPI(t, &config.Config{MaxUploadSizeBytes: 1024})
	defer cleanup()

	fields := map[string]string{"name": "Rose", "price": "50000", "type": "Red", "unit": "bunch"}
	body, contentType := multipartBody(t, fields, bytes.Repeat([]byte{0xAB}, 4096))

	resp, err := http.Post(api.server.URL+"/flowers", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	api.flowers.AssertNotCalled(t, "CreateFlower", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateFlowerAPI(t *testing.T) {
	api, cleanup := setupHandlerTestAPI(t, nil)
	defer cleanup()

	put := func(t *testing.T, id string, form url.Values) *http.Response {
		t.Helper()
		req, err := http.NewRequest(http.MethodPut, api.server.URL+"/flowers/"+id, strings.NewReader(form.Encode()))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("Partial update", func(t *testing.T) {
		price := int64(65000)
		tags := ""
		expected := models.FlowerPatch{Price: &price, Tags: &tags}

		updated := sampleFlower("a1")
		updated.Price = 65000
		api.flowers.On("UpdateFlower", mock.Anything, "a1", expected, []byte(nil)).Return(updated, nil).Once()
		api.auditor.On("Log", mock.Anything, "flower.update", mock.Anything, "Flower:a1", map[string]interface{}{"new_image": false}).Return().Once()

		// empty name is ignored, empty tags clears them
		resp := put(t, "a1", url.Values{"price": {"65000"}, "tags": {""}, "name": {""}})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body models.FlowerResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Updated", body.Message)
		assert.Equal(t, int64(65000), body.Flower.Price)
	})

	t.Run("Image only", func(t *testing.T) {
		image := []byte("replacement")
		body, contentType := multipartBody(t, nil, image)

		api.flowers.On("UpdateFlower", mock.Anything, "a1", models.FlowerPatch{}, image).Return(sampleFlower("a1"), nil).Once()
		api.auditor.On("Log", mock.Anything, "flower.update", mock.Anything, "Flower:a1", map[string]interface{}{"new_image": true}).Return().Once()

		req, err := http.NewRequest(http.MethodPut, api.server.URL+"/flowers/a1", body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", contentType)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("No data to update", func(t *testing.T) {
		api.flowers.On("UpdateFlower", mock.Anything, "a1", models.FlowerPatch{}, []byte(nil)).
			Return(nil, &services.ValidationError{Msg: "No data to update"}).Once()

		resp := put(t, "a1", url.Values{})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "No data to update", decodeError(t, resp))
	})

	t.Run("Not found", func(t *testing.T) {
		stock := int64(3)
		api.flowers.On("UpdateFlower", mock.Anything, "missing", models.FlowerPatch{Stock: &stock}, []byte(nil)).
			Return(nil, services.ErrNotFound).Once()

		resp := put(t, "missing", url.Values{"stock": {"3"}})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Flower not found", decodeError(t, resp))
	})

	t.Run("Stock is not a number", func(t *testing.T) {
		resp := put(t, "a1", url.Values{"stock": {"many"}})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	api.flowers.AssertExpectations(t)
	api.auditor.AssertExpectations(t)
}

func TestDeleteFlowerAPI(t *testing.T) {
	api, cleanup := setupHandlerTestAPI(t, nil)
	defer cleanup()

	del := func(t *testing.T, id string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(http.MethodDelete, api.server.URL+"/flowers/"+id, nil)
		require.NoError(t, err)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("Success", func(t *testing.T) {
		api.flowers.On("DeleteFlower", mock.Anything, "a1").Return(nil).Once()
		api.auditor.On("Log", mock.Anything, "flower.delete", "203.0.113.7", "Flower:a1", map[string]interface{}(nil)).Return().Once()

		resp := del(t, "a1")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body MessageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Deleted", body.Message)
	})

	t.Run("Not found is not audited", func(t *testing.T) {
		api.flowers.On("DeleteFlower", mock.Anything, "missing").Return(services.ErrNotFound).Once()

		resp := del(t, "missing")
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Store error", func(t *testing.T) {
		api.flowers.On("DeleteFlower", mock.Anything, "a2").Return(errors.New("database is locked")).Once()

		resp := del(t, "a2")
		resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	api.flowers.AssertExpectations(t)
	api.auditor.AssertExpectations(t)
	api.auditor.AssertNumberOfCalls(t, "Log", 1)
}
