// util/validation_util.go

package util

import (
	"fmt"
	"strings"

	"github.com/snipvault/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateSnippetWrite(req model.SnippetWriteRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("snippet title cannot be empty")
	}
	if len(req.Title) > 255 {
		return fmt.Errorf("snippet title cannot exceed 255 characters")
	}
	for _, title := range req.TagTitles {
		if len(title) > 100 {
			return fmt.Errorf("tag title cannot exceed 100 characters")
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateRegistration(req model.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}
