// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package entity holds the static registry of planner entity descriptors and
// the payload/filter validation logic built on top of them.
//
// A Descriptor is configuration data, not a mutable resource: the set of
// supported entity types is fixed at compile time and the registry is
// read-only after package initialisation. The generic CRUD engine operates
// uniformly over every entity type by parameterising on a Descriptor.
package entity

// Kind is the value type of an entity field. It drives JSON payload
// validation, query-parameter parsing, and row scanning.
type Kind int

const (
	// KindText is a free-form string field.
	KindText Kind = iota

	// KindInt is a signed 32-bit integer field.
	KindInt

	// KindDate is a calendar date in "yyyy-mm-dd" format, stored as text.
	KindDate

	// KindBool is a boolean field.
	KindBool
)

// Field describes one non-id, non-owner column of an entity table.
type Field struct {
	Name string
	Kind Kind
}

// Descriptor is the static schema description of one entity type: the table
// it lives in, its id and owner columns, and the ordered list of
// entity-specific fields. Descriptors are never mutated at runtime.
type Descriptor struct {
	// Name is the entity name as it appears in the URL path ({entity}).
	Name string

	// Table is the relational table backing this entity type.
	Table string

	// IDColumn is the primary key column, assigned by the store on insert.
	IDColumn string

	// OwnerColumn ties every row to exactly one user. Every query the CRUD
	// engine issues is scoped by this column; it is never optional.
	OwnerColumn string

	// Fields are the entity-specific columns in declaration order.
	Fields []Field
}

// FieldByName returns the descriptor field with the given name.
func (d Descriptor) FieldByName(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Columns returns the full ordered column list of the entity table:
// id column, owner column, then the entity-specific fields.
func (d Descriptor) Columns() []string {
	columns := make([]string, 0, len(d.Fields)+2)
	columns = append(columns, d.IDColumn, d.OwnerColumn)
	for _, f := range d.Fields {
		columns = append(columns, f.Name)
	}
	return columns
}
