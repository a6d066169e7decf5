package contact_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/gin-gonic/gin"
)

// SubmitContact godoc
// @Summary Submit the contact form
// @Description Accepts a name and subject and returns a confirmation message. The form is stateless: nothing is stored and empty fields are accepted as-is.
// @Tags Contact
// @Accept json
// @Produce json
// @Param form body models.ContactRequest true "Contact form fields"
// @Success 200 {object} models.ApiResponse{data=models.ContactReceipt}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /contact [post]
func SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	receipt := models.ContactReceipt{
		Message: fmt.Sprintf("Thanks %s! Your request to reinforce in %s has been sent.", req.Name, req.Subject),
	}

	log.Printf("[contact.submit] name=%q subject=%q", req.Name, req.Subject)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Contact request sent", receipt))
}
