package constants_test

import (
	"fmt"
	"strings"

	"github.com/agentstation/sherlock/pkg/constants"
)

// Example demonstrates expanding a locale path pattern
func Example() {
	pattern := "locales/{locale}/{namespace}.json"
	path := strings.NewReplacer(
		constants.LocalePlaceholder, "fr",
		constants.NamespacePlaceholder, "common",
	).Replace(pattern)

	fmt.Println(path)
	fmt.Println("fr" + constants.ReportSuffix)
	// Output:
	// locales/fr/common.json
	// fr-require-translation.json
}
