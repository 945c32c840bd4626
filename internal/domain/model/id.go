package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID builds a time-based identifier with a random suffix so concurrent
// creations within the same millisecond cannot collide.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// NewOrderID generates an order identifier.
func NewOrderID() string { return newID("ord") }

// NewCategoryID generates a category identifier.
func NewCategoryID() string { return newID("cat") }

// NewProductID generates a product identifier.
func NewProductID() string { return newID("prod") }

// NewVariantGroupID generates a variant group identifier.
func NewVariantGroupID() string { return newID("var") }
