package controllers_test

import (
	"net/http"
	"testing"

	"crm-backend/config"
	"crm-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCustomersOrdersByName(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)
	category := createCategory(t, "Gold")

	createCustomer(t, "Z Customer", category.ID)
	createCustomer(t, "A Customer", category.ID)
	createCustomer(t, "M Customer", category.ID)

	w := doRequest(t, router, http.MethodGet, "/customers", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	p := decodePage(t, w)
	assert.Equal(t, "Customers/Index", p.Component)

	var customers []models.Customer
	decodeProp(t, p, "customers", &customers)
	require.Len(t, customers, 3)
	assert.Equal(t, "A Customer", customers[0].Name)
	assert.Equal(t, "M Customer", customers[1].Name)
	assert.Equal(t, "Z Customer", customers[2].Name)

	// each row carries its category for display
	require.NotNil(t, customers[0].CustomerCategory)
	assert.Equal(t, "Gold", customers[0].CustomerCategory.Name)
}

func TestGetCustomersRequiresLogin(t *testing.T) {
	router := setupTest(t)

	w := doRequest(t, router, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestNewCustomerListsCategories(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)
	createCategory(t, "Bronze")
	createCategory(t, "Silver")

	w := doRequest(t, router, http.MethodGet, "/customers/create", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	p := decodePage(t, w)
	assert.Equal(t, "Customers/Create", p.Component)

	var categories []models.CustomerCategory
	decodeProp(t, p, "customerCategories", &categories)
	assert.Len(t, categories, 2)
}

func TestCreateCustomer(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)
	category := createCategory(t, "Gold")

	payload := map[string]interface{}{
		"name":                 "Test Customer",
		"reference":            "TC001",
		"customer_category_id": category.ID,
		"started_at":           "2025-01-01",
		"description":          "Test customer description",
	}

	w := doRequest(t, router, http.MethodPost, "/customers", payload, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/customers", w.Header().Get("Location"))

	require.EqualValues(t, 1, countRows(t, &models.Customer{}))

	var customer models.Customer
	require.NoError(t, config.DB.First(&customer).Error)
	assert.Equal(t, "Test Customer", customer.Name)
	assert.Equal(t, "TC001", customer.Reference)
	assert.Equal(t, category.ID, customer.CustomerCategoryID)
	assert.Equal(t, "Test customer description", customer.Description)
	assert.Equal(t, "2025-01-01", customer.StartedAt.Format("2006-01-02"))
}

func TestCreateCustomerFlashShownOnNextPage(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)
	category := createCategory(t, "Gold")

	payload := map[string]interface{}{
		"name":                 "Flash Customer",
		"reference":            "FC001",
		"customer_category_id": category.ID,
		"started_at":           "2025-01-01",
	}

	w := doRequest(t, router, http.MethodPost, "/customers", payload, cookie)
	require.Equal(t, http.StatusFound, w.Code)

	// follow the redirect with the session cookie the response set
	cookies := []*http.Cookie{cookie}
	cookies = append(cookies, w.Result().Cookies()...)

	next := doRequest(t, router, http.MethodGet, "/customers", nil, cookies...)
	require.Equal(t, http.StatusOK, next.Code)

	p := decodePage(t, next)
	require.NotNil(t, p.Flash.Success)
	assert.Equal(t, "Customer created successfully.", *p.Flash.Success)
}

func TestCreateCustomerValidatesRequiredFields(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)

	w := doRequest(t, router, http.MethodPost, "/customers", map[string]interface{}{}, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeErrors(t, w)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "reference")
	assert.Contains(t, errs, "customer_category_id")
	assert.Contains(t, errs, "started_at")

	assert.EqualValues(t, 0, countRows(t, &models.Customer{}))
}

func TestCreateCustomerValidatesCategoryExists(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)

	payload := map[string]interface{}{
		"name":                 "Test Customer",
		"reference":            "TC001",
		"customer_category_id": 999,
		"started_at":           "2025-01-01",
	}

	w := doRequest(t, router, http.MethodPost, "/customers", payload, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeErrors(t, w)
	assert.Contains(t, errs, "customer_category_id")

	assert.EqualValues(t, 0, countRows(t, &models.Customer{}))
}

func TestCreateCustomerValidatesDate(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)
	category := createCategory(t, "Gold")

	payload := map[string]interface{}{
		"name":                 "Test Customer",
		"reference":            "TC001",
		"customer_category_id": category.ID,
		"started_at":           "not-a-date",
	}

	w := doRequest(t, router, http.MethodPost, "/customers", payload, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeErrors(t, w)
	assert.Contains(t, errs, "started_at")
	assert.EqualValues(t, 0, countRows(t, &models.Customer{}))
}

func TestCreateCustomerRequiresLogin(t *testing.T) {
	router := setupTest(t)
	category := createCategory(t, "Gold")

	payload := map[string]interface{}{
		"name":                 "Test Customer",
		"reference":            "TC001",
		"customer_category_id": category.ID,
		"started_at":           "2025-01-01",
	}

	w := doRequest(t, router, http.MethodPost, "/customers", payload)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	assert.EqualValues(t, 0, countRows(t, &models.Customer{}))
}

func TestGetCustomerRedirectsToEdit(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)
	category := createCategory(t, "Gold")
	customer := createCustomer(t, "Acme", category.ID)

	w := doRequest(t, router, http.MethodGet, requestPath("/customers/%d", customer.ID), nil, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, requestPath("/customers/%d/edit", customer.ID), w.Header().Get("Location"))
}

func TestGetCustomerNotFound(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)

	w := doRequest(t, router, http.MethodGet, "/customers/999", nil, cookie)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditCustomerLoadsCategoryAndContacts(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)
	category := createCategory(t, "Silver")
	customer := createCustomer(t, "Acme", category.ID)
	contact := createContact(t, "John", "Doe")
	attachContact(t, contact, customer)

	w := doRequest(t, router, http.MethodGet, requestPath("/customers/%d/edit", customer.ID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	p := decodePage(t, w)
	assert.Equal(t, "Customers/Edit", p.Component)

	var loaded models.Customer
	decodeProp(t, p, "customer", &loaded)
	assert.Equal(t, customer.ID, loaded.ID)
	assert.Equal(t, "Acme", loaded.Name)
	require.NotNil(t, loaded.CustomerCategory)
	assert.Equal(t, "Silver", loaded.CustomerCategory.Name)
	require.Len(t, loaded.Contacts, 1)
	assert.Equal(t, "John", loaded.Contacts[0].FirstName)

	var categories []models.CustomerCategory
	decodeProp(t, p, "customerCategories", &categories)
	assert.Len(t, categories, 1)
}

func TestUpdateCustomer(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)
	category := createCategory(t, "Gold")
	customer := createCustomer(t, "Old Name", category.ID)

	payload := map[string]interface{}{
		"name":                 "Updated Customer Name",
		"reference":            "UC001",
		"customer_category_id": category.ID,
		"started_at":           "2025-01-15",
		"description":          "Updated description",
	}

	w := doRequest(t, router, http.MethodPut, requestPath("/customers/%d", customer.ID), payload, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/customers", w.Header().Get("Location"))

	var updated models.Customer
	require.NoError(t, config.DB.First(&updated, customer.ID).Error)
	assert.Equal(t, "Updated Customer Name", updated.Name)
	assert.Equal(t, "UC001", updated.Reference)
	assert.Equal(t, "Updated description", updated.Description)
	assert.Equal(t, "2025-01-15", updated.StartedAt.Format("2006-01-02"))
}

func TestUpdateCustomerValidatesRequiredFields(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)
	category := createCategory(t, "Gold")
	customer := createCustomer(t, "Acme", category.ID)

	w := doRequest(t, router, http.MethodPut, requestPath("/customers/%d", customer.ID), map[string]interface{}{}, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeErrors(t, w)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "reference")
	assert.Contains(t, errs, "customer_category_id")
	assert.Contains(t, errs, "started_at")

	// nothing was written
	var unchanged models.Customer
	require.NoError(t, config.DB.First(&unchanged, customer.ID).Error)
	assert.Equal(t, "Acme", unchanged.Name)
}

func TestUpdateCustomerRequiresLogin(t *testing.T) {
	router := setupTest(t)
	category := createCategory(t, "Gold")
	customer := createCustomer(t, "Acme", category.ID)

	payload := map[string]interface{}{
		"name":                 "Updated",
		"reference":            "UC001",
		"customer_category_id": category.ID,
		"started_at":           "2025-01-15",
	}

	w := doRequest(t, router, http.MethodPut, requestPath("/customers/%d", customer.ID), payload)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var unchanged models.Customer
	require.NoError(t, config.DB.First(&unchanged, customer.ID).Error)
	assert.Equal(t, "Acme", unchanged.Name)
}

func TestDeleteCustomerDetachesContacts(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)
	category := createCategory(t, "Gold")
	customer := createCustomer(t, "Acme", category.ID)

	first := createContact(t, "John", "Doe")
	second := createContact(t, "Jane", "Smith")
	attachContact(t, first, customer)
	attachContact(t, second, customer)

	require.EqualValues(t, 2, countRows(t, &models.ContactCustomer{}))

	w := doRequest(t, router, http.MethodDelete, requestPath("/customers/%d", customer.ID), nil, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/customers", w.Header().Get("Location"))

	// join rows removed, contacts kept, customer gone
	assert.EqualValues(t, 0, countRows(t, &models.ContactCustomer{}))
	assert.EqualValues(t, 2, countRows(t, &models.Contact{}))
	assert.EqualValues(t, 0, countRows(t, &models.Customer{}))
}

func TestDeleteCustomerRequiresLogin(t *testing.T) {
	router := setupTest(t)
	category := createCategory(t, "Gold")
	customer := createCustomer(t, "Acme", category.ID)

	w := doRequest(t, router, http.MethodDelete, requestPath("/customers/%d", customer.ID), nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	assert.EqualValues(t, 1, countRows(t, &models.Customer{}))
}

func TestDeleteCustomerNotFound(t *testing.T) {
	router := setupTest(t)
	cookie := loginCookie(t)

	w := doRequest(t, router, http.MethodDelete, "/customers/999", nil, cookie)
	require.Equal(t, http.StatusNotFound, w.Code)
}
