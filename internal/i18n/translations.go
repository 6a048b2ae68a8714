// Package i18n holds the key to string tables used for export headers,
// titles and enum labels. Lookups fall back to English, then to the key.
package i18n

import (
	"maps"
	"slices"
	"strings"
)

// Supported languages
const (
	English = "en"
	Greek   = "el"
)

var tables = map[string]map[string]string{
	English: {
		"customers":     "Customers",
		"addCustomer":   "Add Customer",
		"name":          "Name",
		"carType":       "Car Type",
		"carSize":       "Car Size",
		"small":         "Small",
		"medium":        "Medium",
		"big":           "Big",
		"licensePlate":  "License Plate",
		"payment":       "Payment",
		"monthlyFee":    "Monthly Fee",
		"discount":      "Discount",
		"discountType":  "Discount Type",
		"percentage":    "Percentage",
		"monthly":       "Per Month",
		"total":         "Total",
		"parkingSpace":  "Parking Space",
		"paymentDate":   "Payment Date",
		"startDate":     "Start Date",
		"expiryDate":    "Expiry Date",
		"expires":       "Expires",
		"paymentMethod": "Payment Method",
		"keyId":         "Key ID",
		"notes":         "Notes",
		"phone":         "Phone Number",
		"email":         "Email",
		"cash":          "Cash",
		"visa":          "Visa",
		"iris":          "Iris",
		"bank":          "Bank Transaction",
		"other":         "Other",
		"exportPDF":     "Export to PDF",
		"exportExcel":   "Export to Excel",
		"ascending":     "Ascending",
		"descending":    "Descending",
		"sortBy":        "Sort by",
		"search":        "Search",
		"noCustomers":   "No customers found",
		"actions":       "Actions",
		"transactions":  "Transactions",
		"parkingSpaces": "Parking Spaces",
		"status":        "Status",
		"occupied":      "Occupied",
		"available":     "Available",
		"duration":      "Duration",
		"language":      "Language",
		"generatedOn":   "Generated on",
	},
	Greek: {
		"customers":     "Πελάτες",
		"addCustomer":   "Προσθήκη Πελάτη",
		"name":          "Όνομα",
		"carType":       "Τύπος Αυτοκινήτου",
		"carSize":       "Μέγεθος Αυτοκινήτου",
		"small":         "Μικρό",
		"medium":        "Μεσαίο",
		"big":           "Μεγάλο",
		"licensePlate":  "Πινακίδα",
		"payment":       "Πληρωμή",
		"monthlyFee":    "Μηνιαίο Μίσθωμα",
		"discount":      "Έκπτωση",
		"discountType":  "Τύπος Έκπτωσης",
		"percentage":    "Ποσοστό",
		"monthly":       "Ανά Μήνα",
		"total":         "Συνολική",
		"parkingSpace":  "Θέση Στάθμευσης",
		"paymentDate":   "Ημερομηνία Πληρωμής",
		"startDate":     "Ημερομηνία Έναρξης",
		"expiryDate":    "Ημερομηνία Λήξης",
		"expires":       "Λήξη",
		"paymentMethod": "Τρόπος Πληρωμής",
		"keyId":         "Κωδικός Κλειδιού",
		"notes":         "Σημειώσεις",
		"phone":         "Τηλέφωνο",
		"email":         "Email",
		"cash":          "Μετρητά",
		"visa":          "Visa",
		"iris":          "Iris",
		"bank":          "Τραπεζική Συναλλαγή",
		"other":         "Άλλο",
		"exportPDF":     "Εξαγωγή σε PDF",
		"exportExcel":   "Εξαγωγή σε Excel",
		"ascending":     "Αύξουσα",
		"descending":    "Φθίνουσα",
		"sortBy":        "Ταξινόμηση κατά",
		"search":        "Αναζήτηση",
		"noCustomers":   "Δεν βρέθηκαν πελάτες",
		"actions":       "Ενέργειες",
		"transactions":  "Συναλλαγές",
		"parkingSpaces": "Θέσεις Στάθμευσης",
		"status":        "Κατάσταση",
		"occupied":      "Κατειλημμένο",
		"available":     "Διαθέσιμο",
		"duration":      "Διάρκεια",
		"language":      "Γλώσσα",
		"generatedOn":   "Δημιουργήθηκε στις",
	},
}

// Supported reports whether a table exists for lang
func Supported(lang string) bool {
	_, ok := tables[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}

// Normalize returns lang in canonical form, or fallback when lang is unknown
func Normalize(lang, fallback string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if _, ok := tables[l]; ok {
		return l
	}
	return fallback
}

// T translates key into lang
func T(lang, key string) string {
	if v, ok := tables[Normalize(lang, English)][key]; ok {
		return v
	}
	if v, ok := tables[English][key]; ok {
		return v
	}
	return key
}

// Table returns a copy of the table for lang, or nil when unsupported
func Table(lang string) map[string]string {
	src, ok := tables[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return nil
	}
	return maps.Clone(src)
}

// Languages returns the supported language codes in sorted order
func Languages() []string {
	return slices.Sorted(maps.Keys(tables))
}
