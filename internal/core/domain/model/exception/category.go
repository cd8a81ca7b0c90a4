package exception

import (
	"fmt"

	"haulage/internal/pkg/errs"
)

// Category classifies the kind of incident logged against a dispatch.
type Category int

const (
	// Unknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	Unknown Category = iota

	// General covers incidents that fit no specific category.
	General

	// Equipment covers truck or weighbridge malfunctions.
	Equipment

	// Safety covers incidents endangering people or the site.
	Safety

	// Delay covers schedule slippage (traffic, queue, loading delays).
	Delay

	// Quality covers material quality problems found on delivery.
	Quality
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Unknown:   "unknown",
		General:   "general",
		Equipment: "equipment",
		Safety:    "safety",
		Delay:     "delay",
		Quality:   "quality",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Category]string{
		General:   "general",
		Equipment: "equipment",
		Safety:    "safety",
		Delay:     "delay",
		Quality:   "quality",
	}
}

// CategoryFromString parses the wire-level category name.
// Returns an error for unrecognized names.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid exception category", s))
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid",
			fmt.Errorf("%d is not a valid exception category", c))
	}
	return nil
}

// String returns the wire-level name of the category.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}
