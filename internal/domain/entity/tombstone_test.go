package entity

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Live records must store deletedAt as an explicit null: the stores filter
// list queries on deletedAt == nil, and that filter only matches documents
// carrying the field. An omitempty tag here would drop the field on create
// and hide every live shop and product from those queries.
func TestTombstoneFieldIsAlwaysStored(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeOf(Shop{}),
		reflect.TypeOf(Product{}),
	} {
		field, ok := typ.FieldByName("DeletedAt")
		require.True(t, ok, typ.Name())
		assert.Equal(t, "deletedAt", field.Tag.Get("firestore"), typ.Name())
	}
}
