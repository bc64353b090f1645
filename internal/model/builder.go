package model

import (
	"fmt"

	"github.com/deppfellow/recordkit/internal/errs"
	"github.com/deppfellow/recordkit/internal/identifier"
	"github.com/google/uuid"
)

// Field names a builder field. Values match the JSON and column names.
type Field string

const (
	FieldID    Field = "id"
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldKind  Field = "kind"
	FieldKey   Field = "key"
	FieldTitle Field = "title"
	FieldBody  Field = "body"
)

// Placeholder values used by the defaulting policy.
const (
	DefaultUserName     = "Taro"
	DefaultCompanyName  = "Example Company"
	DefaultContentTitle = "Untitled"
	DefaultContentBody  = ""
	EmailDomain         = "example.com"
)

// DefaultEmail derives the placeholder address for a user name.
func DefaultEmail(name string) string {
	return fmt.Sprintf("%s@%s", name, EmailDomain)
}

func ptr[T any](v T) *T { return &v }

// UserPartial is a User under construction; nil means unset.
type UserPartial struct {
	ID    *uuid.UUID
	Name  *string
	Email *string
	Kind  *UserKind
}

// WithDefaults returns a copy of p with every unset field filled, in order:
//
//  1. id    <- gen()
//  2. name  <- DefaultUserName
//  3. email <- "{name}@example.com", using the name after step 2
//  4. kind  <- Normal
//
// Step 3 reads the result of step 2, so the order is fixed.
func (p UserPartial) WithDefaults(gen identifier.Generator) UserPartial {
	if p.ID == nil {
		p.ID = ptr(gen())
	}
	if p.Name == nil {
		p.Name = ptr(DefaultUserName)
	}
	if p.Email == nil {
		p.Email = ptr(DefaultEmail(*p.Name))
	}
	if p.Kind == nil {
		p.Kind = ptr(UserKindNormal)
	}
	return p
}

// missing lists unset fields in declaration order.
func (p UserPartial) missing() []string {
	var fields []string
	if p.ID == nil {
		fields = append(fields, string(FieldID))
	}
	if p.Name == nil {
		fields = append(fields, string(FieldName))
	}
	if p.Email == nil {
		fields = append(fields, string(FieldEmail))
	}
	if p.Kind == nil {
		fields = append(fields, string(FieldKind))
	}
	return fields
}

// UserBuilder stages a User.
type UserBuilder struct {
	partial  UserPartial
	consumed bool
}

// NewUserBuilder returns an empty builder.
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{}
}

func (b *UserBuilder) SetID(id uuid.UUID) *UserBuilder {
	b.partial.ID = &id
	return b
}

func (b *UserBuilder) SetName(name string) *UserBuilder {
	b.partial.Name = &name
	return b
}

func (b *UserBuilder) SetEmail(email string) *UserBuilder {
	b.partial.Email = &email
	return b
}

func (b *UserBuilder) SetKind(kind UserKind) *UserBuilder {
	b.partial.Kind = &kind
	return b
}

// IsSet reports whether field holds a value. Unknown fields are never set.
func (b *UserBuilder) IsSet(field Field) bool {
	switch field {
	case FieldID:
		return b.partial.ID != nil
	case FieldName:
		return b.partial.Name != nil
	case FieldEmail:
		return b.partial.Email != nil
	case FieldKind:
		return b.partial.Kind != nil
	}
	return false
}

// Partial returns a copy of the staged fields.
func (b *UserBuilder) Partial() UserPartial {
	return b.partial
}

// ApplyDefaults fills unset fields, see UserPartial.WithDefaults.
func (b *UserBuilder) ApplyDefaults(gen identifier.Generator) *UserBuilder {
	b.partial = b.partial.WithDefaults(gen)
	return b
}

// Build returns the User, or an *errs.IncompleteBuilderError naming every
// unset field. A successful Build consumes the builder.
func (b *UserBuilder) Build() (User, error) {
	if b.consumed {
		return User{}, errs.ErrBuilderConsumed
	}
	if missing := b.partial.missing(); len(missing) > 0 {
		return User{}, &errs.IncompleteBuilderError{Entity: "user", Missing: missing}
	}

	b.consumed = true
	return User{
		ID:    *b.partial.ID,
		Name:  *b.partial.Name,
		Email: *b.partial.Email,
		Kind:  *b.partial.Kind,
	}, nil
}

// Reset clears every field so the builder can be used again.
func (b *UserBuilder) Reset() {
	*b = UserBuilder{}
}

// CompanyPartial is a Company under construction; nil means unset.
type CompanyPartial struct {
	ID   *uuid.UUID
	Name *string
}

// WithDefaults fills id then name.
func (p CompanyPartial) WithDefaults(gen identifier.Generator) CompanyPartial {
	if p.ID == nil {
		p.ID = ptr(gen())
	}
	if p.Name == nil {
		p.Name = ptr(DefaultCompanyName)
	}
	return p
}

func (p CompanyPartial) missing() []string {
	var fields []string
	if p.ID == nil {
		fields = append(fields, string(FieldID))
	}
	if p.Name == nil {
		fields = append(fields, string(FieldName))
	}
	return fields
}

// CompanyBuilder stages a Company.
type CompanyBuilder struct {
	partial  CompanyPartial
	consumed bool
}

func NewCompanyBuilder() *CompanyBuilder {
	return &CompanyBuilder{}
}

func (b *CompanyBuilder) SetID(id uuid.UUID) *CompanyBuilder {
	b.partial.ID = &id
	return b
}

func (b *CompanyBuilder) SetName(name string) *CompanyBuilder {
	b.partial.Name = &name
	return b
}

func (b *CompanyBuilder) IsSet(field Field) bool {
	switch field {
	case FieldID:
		return b.partial.ID != nil
	case FieldName:
		return b.partial.Name != nil
	}
	return false
}

func (b *CompanyBuilder) Partial() CompanyPartial {
	return b.partial
}

func (b *CompanyBuilder) ApplyDefaults(gen identifier.Generator) *CompanyBuilder {
	b.partial = b.partial.WithDefaults(gen)
	return b
}

func (b *CompanyBuilder) Build() (Company, error) {
	if b.consumed {
		return Company{}, errs.ErrBuilderConsumed
	}
	if missing := b.partial.missing(); len(missing) > 0 {
		return Company{}, &errs.IncompleteBuilderError{Entity: "company", Missing: missing}
	}

	b.consumed = true
	return Company{
		ID:   *b.partial.ID,
		Name: *b.partial.Name,
	}, nil
}

func (b *CompanyBuilder) Reset() {
	*b = CompanyBuilder{}
}

// ContentPartial is a Content under construction; nil means unset.
type ContentPartial struct {
	Key   *string
	Title *string
	Body  *string
}

// WithDefaults fills key with a fresh identifier, then title and body.
func (p ContentPartial) WithDefaults(gen identifier.Generator) ContentPartial {
	if p.Key == nil {
		p.Key = ptr(gen().String())
	}
	if p.Title == nil {
		p.Title = ptr(DefaultContentTitle)
	}
	if p.Body == nil {
		p.Body = ptr(DefaultContentBody)
	}
	return p
}

func (p ContentPartial) missing() []string {
	var fields []string
	if p.Key == nil {
		fields = append(fields, string(FieldKey))
	}
	if p.Title == nil {
		fields = append(fields, string(FieldTitle))
	}
	if p.Body == nil {
		fields = append(fields, string(FieldBody))
	}
	return fields
}

// ContentBuilder stages a Content.
type ContentBuilder struct {
	partial  ContentPartial
	consumed bool
}

func NewContentBuilder() *ContentBuilder {
	return &ContentBuilder{}
}

func (b *ContentBuilder) SetKey(key string) *ContentBuilder {
	b.partial.Key = &key
	return b
}

func (b *ContentBuilder) SetTitle(title string) *ContentBuilder {
	b.partial.Title = &title
	return b
}

func (b *ContentBuilder) SetBody(body string) *ContentBuilder {
	b.partial.Body = &body
	return b
}

func (b *ContentBuilder) IsSet(field Field) bool {
	switch field {
	case FieldKey:
		return b.partial.Key != nil
	case FieldTitle:
		return b.partial.Title != nil
	case FieldBody:
		return b.partial.Body != nil
	}
	return false
}

func (b *ContentBuilder) Partial() ContentPartial {
	return b.partial
}

func (b *ContentBuilder) ApplyDefaults(gen identifier.Generator) *ContentBuilder {
	b.partial = b.partial.WithDefaults(gen)
	return b
}

func (b *ContentBuilder) Build() (Content, error) {
	if b.consumed {
		return Content{}, errs.ErrBuilderConsumed
	}
	if missing := b.partial.missing(); len(missing) > 0 {
		return Content{}, &errs.IncompleteBuilderError{Entity: "content", Missing: missing}
	}

	b.consumed = true
	return Content{
		Key:   *b.partial.Key,
		Title: *b.partial.Title,
		Body:  *b.partial.Body,
	}, nil
}

func (b *ContentBuilder) Reset() {
	*b = ContentBuilder{}
}
