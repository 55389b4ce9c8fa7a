package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Bishanprabhashwara/NYXAEBackend/pkg/apperrors"
)

// RequestValidator handles all input validation
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// BindAndValidate decodes the JSON body into req and runs struct validation.
// On failure it writes the field-level error envelope and returns false.
func (rv *RequestValidator) BindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid JSON format. Please check your request body.",
		})
		return false
	}

	if err := rv.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			messages := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				messages = append(messages, fieldErrorMessage(fe))
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation Error",
				"errors":  messages,
			})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error"})
		return false
	}

	return true
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "required_without":
		return "Either tshirtId or productId is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "min":
		if fe.Kind().String() == "slice" {
			return fe.Field() + " must contain at least " + fe.Param() + " item(s)"
		}
		return fe.Field() + " must be at least " + fe.Param()
	case "gte":
		return fe.Field() + " must be " + fe.Param() + " or greater"
	case "oneof":
		return fe.Field() + " must be one of " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email address"
	default:
		return fe.Field() + " is invalid"
	}
}

// ParseObjectID validates a 24-hex path parameter before the core runs.
func ParseObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// ParsePagination reads page/limit with sane fallbacks; clamping happens in
// the services.
func ParsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}
	return page, limit
}

// respondError maps an application error onto the failure envelope.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.StatusCode(err), gin.H{
		"success": false,
		"message": apperrors.PublicMessage(err),
	})
}
