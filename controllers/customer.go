package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"crm-backend/config"
	"crm-backend/models"
	"crm-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CustomerInput is the form payload for creating or updating a customer.
// started_at is bound as a string so a bad date reports a field error
// instead of a binding failure.
type CustomerInput struct {
	Name               string `json:"name" form:"name" binding:"required,max=255"`
	Reference          string `json:"reference" form:"reference" binding:"required,max=255"`
	CustomerCategoryID uint   `json:"customer_category_id" form:"customer_category_id" binding:"required"`
	StartedAt          string `json:"started_at" form:"started_at" binding:"required"`
	Description        string `json:"description" form:"description"`
}

type CustomerIndexProps struct {
	Customers []models.Customer `json:"customers"`
}

type CustomerCreateProps struct {
	CustomerCategories []models.CustomerCategory `json:"customerCategories"`
}

type CustomerEditProps struct {
	Customer           models.Customer           `json:"customer"`
	CustomerCategories []models.CustomerCategory `json:"customerCategories"`
}

// GetCustomers lists all customers with their category, ordered by name.
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Preload("CustomerCategory").Order("name asc").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	utils.RenderPage(c, "Customers/Index", CustomerIndexProps{Customers: customers})
}

// NewCustomer returns the create-form data: every category for selection.
func NewCustomer(c *gin.Context) {
	var categories []models.CustomerCategory
	if err := config.DB.Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	utils.RenderPage(c, "Customers/Create", CustomerCreateProps{CustomerCategories: categories})
}

// CreateCustomer validates the submission and inserts a new customer.
func CreateCustomer(c *gin.Context) {
	input, startedAt, ok := validateCustomerInput(c)
	if !ok {
		return
	}

	customer := models.Customer{
		Name:               input.Name,
		Reference:          input.Reference,
		StartedAt:          startedAt,
		Description:        input.Description,
		CustomerCategoryID: input.CustomerCategoryID,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	utils.Flash(c, "Customer created successfully.")
	c.Redirect(http.StatusFound, "/customers")
}

// GetCustomer has no standalone detail view; it sends the caller to the
// edit page.
func GetCustomer(c *gin.Context) {
	customer, ok := findCustomer(c)
	if !ok {
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/customers/%d/edit", customer.ID))
}

// EditCustomer returns the edit-form data: the customer with its
// category and contacts eagerly loaded, plus the category list for
// re-selection.
func EditCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	var customer models.Customer
	if err := config.DB.Preload("CustomerCategory").Preload("Contacts").
		First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var categories []models.CustomerCategory
	if err := config.DB.Order("name asc").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	utils.RenderPage(c, "Customers/Edit", CustomerEditProps{
		Customer:           customer,
		CustomerCategories: categories,
	})
}

// UpdateCustomer validates the submission and overwrites the validated
// fields on the existing row.
func UpdateCustomer(c *gin.Context) {
	customer, ok := findCustomer(c)
	if !ok {
		return
	}

	input, startedAt, ok := validateCustomerInput(c)
	if !ok {
		return
	}

	customer.Name = input.Name
	customer.Reference = input.Reference
	customer.StartedAt = startedAt
	customer.Description = input.Description
	customer.CustomerCategoryID = input.CustomerCategoryID

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	utils.Flash(c, "Customer updated successfully.")
	c.Redirect(http.StatusFound, "/customers")
}

// DeleteCustomer detaches every contact, then removes the customer row.
// Contacts themselves are never deleted here.
func DeleteCustomer(c *gin.Context) {
	customer, ok := findCustomer(c)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customer.ID).
			Delete(&models.ContactCustomer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	utils.Flash(c, "Customer deleted successfully.")
	c.Redirect(http.StatusFound, "/customers")
}

func findCustomer(c *gin.Context) (models.Customer, bool) {
	var customer models.Customer

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return customer, false
	}

	if err := config.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return customer, false
	}

	return customer, true
}

// validateCustomerInput applies the customer create/update rules. Any
// failure is reported as a field -> messages map and aborts the request
// before anything is written.
func validateCustomerInput(c *gin.Context) (CustomerInput, time.Time, bool) {
	var input CustomerInput
	var startedAt time.Time

	errs := utils.FieldErrors{}
	if err := c.ShouldBind(&input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return input, startedAt, false
		}
		errs = utils.ValidationErrors(verrs)
	}

	if input.StartedAt != "" {
		t, err := utils.ParseDate(input.StartedAt)
		if err != nil {
			errs.Add("started_at", "The started_at field must be a valid date.")
		} else {
			startedAt = t
		}
	}

	if input.CustomerCategoryID != 0 {
		var count int64
		if err := config.DB.Model(&models.CustomerCategory{}).
			Where("id = ?", input.CustomerCategoryID).Count(&count).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return input, startedAt, false
		}
		if count == 0 {
			errs.Add("customer_category_id", "The selected customer_category_id is invalid.")
		}
	}

	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return input, startedAt, false
	}

	return input, startedAt, true
}
