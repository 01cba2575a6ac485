package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all fields of filter whose form
// parameter is set in the query string of url.
//
// This allows filtering for zero values without pointer fields.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	query := url.Query()
	typ := reflect.Indirect(reflect.ValueOf(filter)).Type()
	for i := range typ.NumField() {
		if query.Has(typ.Field(i).Tag.Get("form")) {
			setFields = append(setFields, typ.Field(i).Name)
		}
	}

	return setFields
}
