package tableview

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"
)

// StructFieldNaming defines how struct fields are mapped to columns
// by RecordsFromStructs.
//
// nil is a valid value for *StructFieldNaming and is equal to the
// zero value, which uses every exported struct field with its
// field name as column key.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column key.
	// If Tag is empty, every struct field is treated as untagged.
	Tag string
	// Ignore excludes fields whose key equals it from the columns.
	Ignore string
	// Title will be called with the column key to derive the
	// column title. If nil, SpacePascalCase is used.
	Title func(key string) string
}

// DefaultStructFieldNaming uses "col" as key tag, ignores "-"
// tagged fields, and titles columns with SpacePascalCase.
var DefaultStructFieldNaming = StructFieldNaming{
	Tag:    "col",
	Ignore: "-",
	Title:  SpacePascalCase,
}

func (n *StructFieldNaming) fieldKey(field reflect.StructField) string {
	if n == nil {
		return field.Name
	}
	if n.Tag != "" {
		if tag, ok := field.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	return field.Name
}

func (n *StructFieldNaming) title(key string) string {
	if n == nil || n.Title == nil {
		return SpacePascalCase(key)
	}
	return n.Title(key)
}

// RecordsFromStructs converts a slice of structs into columns and
// records for a Table, using the DefaultStructFieldNaming.
//
// Exported struct fields become columns, including the inlined
// fields of anonymously embedded structs. Nil pointer fields
// become missing record values.
func RecordsFromStructs[T any](structs []T) (columns []Column, records []Record, err error) {
	return RecordsFromStructsNaming[T](structs, &DefaultStructFieldNaming)
}

// RecordsFromStructsNaming converts a slice of structs into columns
// and records for a Table using the passed naming.
func RecordsFromStructsNaming[T any](structs []T, naming *StructFieldNaming) (columns []Column, records []Record, err error) {
	structType := reflect.TypeOf(structs).Elem()
	for structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("records element type must be a struct but is %s", structType)
	}

	fields := structFieldTypes(structType)
	for _, field := range fields {
		key := naming.fieldKey(field)
		if naming != nil && naming.Ignore != "" && key == naming.Ignore {
			continue
		}
		columns = append(columns, Column{Key: key, Title: naming.title(key)})
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("struct type %s has no usable columns", structType)
	}

	records = make([]Record, len(structs))
	for i := range structs {
		strct := reflect.ValueOf(structs[i])
		for strct.Kind() == reflect.Pointer {
			if strct.IsNil() {
				break
			}
			strct = strct.Elem()
		}
		record := make(Record, len(columns))
		if strct.Kind() == reflect.Struct {
			fillRecord(record, strct, naming)
		}
		records[i] = record
	}
	return columns, records, nil
}

func fillRecord(record Record, strct reflect.Value, naming *StructFieldNaming) {
	structType := strct.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		switch {
		case field.Anonymous:
			embedded := strct.Field(i)
			for embedded.Kind() == reflect.Pointer && !embedded.IsNil() {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				fillRecord(record, embedded, naming)
			}
		case token.IsExported(field.Name):
			key := naming.fieldKey(field)
			if naming != nil && naming.Ignore != "" && key == naming.Ignore {
				continue
			}
			value := strct.Field(i)
			for value.Kind() == reflect.Pointer {
				if value.IsNil() {
					value = reflect.Value{}
					break
				}
				value = value.Elem()
			}
			if value.IsValid() {
				record[key] = value.Interface()
			}
		}
	}
}

// structFieldTypes returns the exported fields of a struct type
// including the inlined fields of any anonymously embedded structs.
func structFieldTypes(structType reflect.Type) (fields []reflect.StructField) {
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		switch {
		case field.Anonymous:
			fields = append(fields, structFieldTypes(field.Type)...)
		case token.IsExported(field.Name):
			fields = append(fields, field)
		}
	}
	return fields
}
