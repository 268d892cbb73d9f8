// Package model loads the YAML entity model the compiler consumes.
package model

import (
	"fmt"
	"os"

	"github.com/migdef/migdef/schema"
	"gopkg.in/yaml.v2"
)

type File struct {
	Entities []Entity `yaml:"entities"`
}

type Entity struct {
	Name       string      `yaml:"name"`
	Table      string      `yaml:"table"`
	Attributes []Attribute `yaml:"attributes"`
}

type Attribute struct {
	Name      string `yaml:"name"`
	Column    string `yaml:"column,omitempty"`
	Type      string `yaml:"type,omitempty"`
	Class     string `yaml:"class,omitempty"` // FQN of a referenced entity or enum
	ID        bool   `yaml:"id,omitempty"`
	Identity  bool   `yaml:"identity,omitempty"`
	Mandatory bool   `yaml:"mandatory,omitempty"`
	Embedded  bool   `yaml:"embedded,omitempty"`
	Enum      bool   `yaml:"enum,omitempty"`
	Length    int    `yaml:"length,omitempty"`
	Precision int    `yaml:"precision,omitempty"`
	Scale     int    `yaml:"scale,omitempty"`

	Attributes []Attribute `yaml:"attributes,omitempty"`
}

// Load reads and converts a model file into entity descriptors.
func Load(path string) ([]schema.EntityDescriptor, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(buf)
}

func Parse(buf []byte) ([]schema.EntityDescriptor, error) {
	var file File
	if err := yaml.UnmarshalStrict(buf, &file); err != nil {
		return nil, err
	}

	entities := make([]schema.EntityDescriptor, 0, len(file.Entities))
	for _, entity := range file.Entities {
		descriptor, err := convertEntity(entity)
		if err != nil {
			return nil, err
		}
		entities = append(entities, descriptor)
	}
	return entities, nil
}

func convertEntity(entity Entity) (schema.EntityDescriptor, error) {
	if entity.Name == "" {
		return schema.EntityDescriptor{}, fmt.Errorf("entity without a name")
	}
	if entity.Table == "" {
		return schema.EntityDescriptor{}, fmt.Errorf("entity %s has no table", entity.Name)
	}

	attributes := make([]schema.AttributeDescriptor, 0, len(entity.Attributes))
	for _, attr := range entity.Attributes {
		descriptor, err := convertAttribute(entity.Name, attr)
		if err != nil {
			return schema.EntityDescriptor{}, err
		}
		attributes = append(attributes, descriptor)
	}

	return schema.EntityDescriptor{
		Name:       entity.Name,
		Table:      entity.Table,
		Attributes: attributes,
	}, nil
}

func convertAttribute(entityName string, attr Attribute) (schema.AttributeDescriptor, error) {
	if attr.Name == "" {
		return schema.AttributeDescriptor{}, fmt.Errorf("entity %s has an attribute without a name", entityName)
	}
	if attr.Embedded && len(attr.Attributes) == 0 {
		return schema.AttributeDescriptor{}, schema.InvalidAttributeError{
			Entity:    entityName,
			Attribute: attr.Name,
			Reason:    "embedded attribute has no sub-attributes",
		}
	}
	if !attr.Embedded && attr.Type == "" {
		return schema.AttributeDescriptor{}, fmt.Errorf("attribute %s.%s has no type", entityName, attr.Name)
	}

	descriptor := schema.AttributeDescriptor{
		Name:      attr.Name,
		Column:    attr.Column,
		Type:      schema.LogicalType(attr.Type),
		ID:        attr.ID,
		Identity:  attr.Identity,
		Mandatory: attr.Mandatory,
		Class:     attr.Class != "",
		Embedded:  attr.Embedded,
		Enum:      attr.Enum,
		Length:    attr.Length,
		Precision: attr.Precision,
		Scale:     attr.Scale,
	}
	if attr.Class != "" {
		descriptor.TypeInfo = schema.TypeDescriptor{
			FQN:       attr.Class,
			ClassName: simpleClassName(attr.Class),
		}
	}
	for _, sub := range attr.Attributes {
		nested, err := convertAttribute(entityName, sub)
		if err != nil {
			return schema.AttributeDescriptor{}, err
		}
		descriptor.Attributes = append(descriptor.Attributes, nested)
	}
	return descriptor, nil
}

func simpleClassName(fqn string) string {
	for i := len(fqn) - 1; i >= 0; i-- {
		if fqn[i] == '.' {
			return fqn[i+1:]
		}
	}
	return fqn
}
