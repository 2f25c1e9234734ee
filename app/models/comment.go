package models

import "time"

// Validate checks the comment's fields. A missing name and a missing
// body are reported independently: the returned *ValidationError carries
// one message per offending field only.
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return newValidationError(err)
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}
