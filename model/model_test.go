package model

import (
	"testing"

	"github.com/migdef/migdef/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customerModel = `
entities:
  - name: Customer
    table: CUSTOMER
    attributes:
      - name: id
        type: uuid
        id: true
      - name: name
        type: string
        length: 100
        mandatory: true
      - name: group
        column: GROUP_ID
        type: uuid
        class: com.example.sales.CustomerGroup
      - name: address
        embedded: true
        attributes:
          - name: city
            column: ADDRESS_CITY
            type: string
            length: 50
          - name: zip
            column: ADDRESS_ZIP
            type: string
            length: 10
`

func TestParse(t *testing.T) {
	entities, err := Parse([]byte(customerModel))
	require.NoError(t, err)
	require.Len(t, entities, 1)

	customer := entities[0]
	assert.Equal(t, "Customer", customer.Name)
	assert.Equal(t, "CUSTOMER", customer.Table)
	require.Len(t, customer.Attributes, 4)

	id := customer.Attributes[0]
	assert.True(t, id.ID)
	assert.Equal(t, schema.LogicalUUID, id.Type)

	name := customer.Attributes[1]
	assert.True(t, name.Mandatory)
	assert.Equal(t, 100, name.Length)
	assert.Equal(t, "NAME", customer.ColumnName(name))

	group := customer.Attributes[2]
	assert.True(t, group.Class)
	assert.Equal(t, "com.example.sales.CustomerGroup", group.TypeInfo.FQN)
	assert.Equal(t, "CustomerGroup", group.TypeInfo.ClassName)
	assert.Equal(t, "GROUP_ID", customer.ColumnName(group))

	address := customer.Attributes[3]
	assert.True(t, address.Embedded)
	require.Len(t, address.Attributes, 2)
	assert.Equal(t, "ADDRESS_CITY", address.Attributes[0].Column)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(`
entities:
  - name: Customer
    table: CUSTOMER
    colums: []
`))
	assert.Error(t, err)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name  string
		model string
	}{
		{
			name: "entity without a name",
			model: `
entities:
  - table: CUSTOMER
`,
		},
		{
			name: "entity without a table",
			model: `
entities:
  - name: Customer
`,
		},
		{
			name: "attribute without a name",
			model: `
entities:
  - name: Customer
    table: CUSTOMER
    attributes:
      - type: string
`,
		},
		{
			name: "non-embedded attribute without a type",
			model: `
entities:
  - name: Customer
    table: CUSTOMER
    attributes:
      - name: notes
`,
		},
		{
			name: "embedded attribute without sub-attributes",
			model: `
entities:
  - name: Customer
    table: CUSTOMER
    attributes:
      - name: address
        embedded: true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.model))
			assert.Error(t, err)
		})
	}
}

func TestParseEmbeddedWithoutSubAttributesErrorDetail(t *testing.T) {
	_, err := Parse([]byte(`
entities:
  - name: Customer
    table: CUSTOMER
    attributes:
      - name: address
        embedded: true
`))
	var invalid schema.InvalidAttributeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Customer", invalid.Entity)
	assert.Equal(t, "address", invalid.Attribute)
}
