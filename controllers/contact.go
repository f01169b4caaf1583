package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"crm-backend/config"
	"crm-backend/models"
	"crm-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CreateContactInput requires the owning customer to exist; a contact
// is always born attached to exactly one customer.
type CreateContactInput struct {
	FirstName  string `json:"first_name" form:"first_name" binding:"required"`
	LastName   string `json:"last_name" form:"last_name" binding:"required"`
	CustomerID uint   `json:"customer_id" form:"customer_id" binding:"required"`
}

// UpdateContactInput accepts customer_id only to compute the redirect
// target; it is deliberately not checked against the customers table.
type UpdateContactInput struct {
	FirstName  string `json:"first_name" form:"first_name" binding:"required"`
	LastName   string `json:"last_name" form:"last_name" binding:"required"`
	CustomerID uint   `json:"customer_id" form:"customer_id"`
}

// CreateContact inserts a contact and attaches it to the submitted
// customer in one transaction, then returns to that customer's page.
func CreateContact(c *gin.Context) {
	var input CreateContactInput

	errs := utils.FieldErrors{}
	if err := c.ShouldBind(&input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		errs = utils.ValidationErrors(verrs)
	}

	if input.CustomerID != 0 {
		var count int64
		if err := config.DB.Model(&models.Customer{}).
			Where("id = ?", input.CustomerID).Count(&count).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if count == 0 {
			errs.Add("customer_id", "The selected customer_id is invalid.")
		}
	}

	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	contact := models.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&contact).Error; err != nil {
			return err
		}
		return tx.Create(&models.ContactCustomer{
			ContactID:  contact.ID,
			CustomerID: input.CustomerID,
		}).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	utils.Flash(c, "Contact created successfully.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/customers/%d", input.CustomerID))
}

// UpdateContact overwrites the name fields only; attachments are not
// touched. The redirect goes to the edit page of whatever customer_id
// was submitted, looked up or not.
func UpdateContact(c *gin.Context) {
	contact, ok := findContact(c)
	if !ok {
		return
	}

	var input UpdateContactInput
	if err := c.ShouldBind(&input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		utils.RespondWithValidationErrors(c, utils.ValidationErrors(verrs))
		return
	}

	contact.FirstName = input.FirstName
	contact.LastName = input.LastName

	if err := config.DB.Save(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	utils.Flash(c, "Contact updated successfully.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/customers/%d/edit", input.CustomerID))
}

// DeleteContact detaches the contact from every customer, then removes
// the row entirely, and returns to the referring page.
func DeleteContact(c *gin.Context) {
	contact, ok := findContact(c)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", contact.ID).
			Delete(&models.ContactCustomer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&contact).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete contact")
		return
	}

	utils.Flash(c, "Contact deleted successfully.")

	back := c.Request.Referer()
	if back == "" {
		back = "/customers"
	}
	c.Redirect(http.StatusFound, back)
}

func findContact(c *gin.Context) (models.Contact, bool) {
	var contact models.Contact

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		return contact, false
	}

	if err := config.DB.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return contact, false
	}

	return contact, true
}
