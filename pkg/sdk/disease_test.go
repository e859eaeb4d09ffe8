package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justineneema/cropctl/pkg/sdk"
)

func TestListDiseases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/diseases/", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`[
			{"id": 1, "name": "Maize Leaf Blight", "species": "Maize", "treatment": "Rotate crops"},
			{"id": 2, "name": "Potato Late Blight", "species": "Potato", "treatment": "Use certified seed"}
		]`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL, sdk.NewSession(&memStore{identity: testIdentity("T1", false)}))

	diseases, err := client.ListDiseases(context.Background())
	require.NoError(t, err)
	require.Len(t, diseases, 2)
	assert.Equal(t, "Maize Leaf Blight", diseases[0].Name)
	assert.Equal(t, int64(2), diseases[1].ID)
}

func TestGetDisease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/diseases/7/", r.URL.Path)
		w.Write([]byte(`{"id": 7, "name": "Banana Bacterial Wilt", "species": "Banana", "care_tips": "Maintain field hygiene"}`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL, sdk.NewSession(&memStore{identity: testIdentity("T1", false)}))

	disease, err := client.GetDisease(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Banana Bacterial Wilt", disease.Name)
	assert.Equal(t, "Maintain field hygiene", disease.CareTips)
}

func TestCreateDisease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/diseases/", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		var input sdk.DiseaseInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "Coffee Rust", input.Name)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 9, "name": "Coffee Rust", "species": "Coffee"}`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL, sdk.NewSession(&memStore{identity: testIdentity("T1", true)}))

	disease, err := client.CreateDisease(context.Background(), sdk.DiseaseInput{Name: "Coffee Rust", Species: "Coffee"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), disease.ID)
}

func TestCreateDiseaseValidatesInput(t *testing.T) {
	client := sdk.NewClient("http://unused", sdk.NewSession(&memStore{}))

	_, err := client.CreateDisease(context.Background(), sdk.DiseaseInput{Species: "Maize"})
	var apiErr *sdk.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, sdk.KindValidation, apiErr.Kind)
	assert.Equal(t, "name", apiErr.Field)

	_, err = client.CreateDisease(context.Background(), sdk.DiseaseInput{Name: "Coffee Rust"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "species", apiErr.Field)
}

func TestUpdateAndDeleteDisease(t *testing.T) {
	var gotMethods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, r.Method)
		assert.Equal(t, "/api/diseases/4/", r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte(`{"id": 4, "name": "Updated", "species": "Maize"}`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL, sdk.NewSession(&memStore{identity: testIdentity("T1", true)}))

	disease, err := client.UpdateDisease(context.Background(), 4, sdk.DiseaseInput{Name: "Updated", Species: "Maize"})
	require.NoError(t, err)
	assert.Equal(t, "Updated", disease.Name)

	require.NoError(t, client.DeleteDisease(context.Background(), 4))
	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, gotMethods)
}
