package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserKind_TextEncoding(t *testing.T) {
	data, err := json.Marshal(User{ID: fixedID, Name: "a", Email: "a@example.com", Kind: UserKindAdmin})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"01890a5d-ac96-774b-bcce-b302099a8057","name":"a","email":"a@example.com","kind":"Admin"}`, string(data))

	_, err = json.Marshal(User{Kind: UserKind("Root")})
	assert.Error(t, err)

	kind, err := ParseUserKind("Normal")
	require.NoError(t, err)
	assert.Equal(t, UserKindNormal, kind)

	_, err = ParseUserKind("normal")
	assert.Error(t, err)

	v, err := UserKindAdmin.Value()
	require.NoError(t, err)
	assert.Equal(t, "Admin", v)
}

func TestDecodeStrict(t *testing.T) {
	t.Run("User", func(t *testing.T) {
		var u User
		err := DecodeStrict([]byte(`{"id":"01890a5d-ac96-774b-bcce-b302099a8057","name":"a","email":"a@example.com","kind":"Normal"}`), &u)
		require.NoError(t, err)
		assert.Equal(t, fixedID, u.ID)
		assert.Equal(t, UserKindNormal, u.Kind)
	})

	t.Run("UnknownField", func(t *testing.T) {
		var c Company
		err := DecodeStrict([]byte(`{"id":"01890a5d-ac96-774b-bcce-b302099a8057","name":"a","created_at":"now"}`), &c)
		assert.Error(t, err)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		var u User
		err := DecodeStrict([]byte(`{"id":"01890a5d-ac96-774b-bcce-b302099a8057","name":"a","email":"e","kind":"Root"}`), &u)
		assert.Error(t, err)
	})

	t.Run("MissingKind", func(t *testing.T) {
		var u User
		err := DecodeStrict([]byte(`{"id":"01890a5d-ac96-774b-bcce-b302099a8057","name":"a","email":"a@example.com"}`), &u)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"kind"`)
	})

	t.Run("NullField", func(t *testing.T) {
		var c Company
		err := DecodeStrict([]byte(`{"id":"01890a5d-ac96-774b-bcce-b302099a8057","name":null}`), &c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"name"`)
	})

	t.Run("EmptyObject", func(t *testing.T) {
		var u User
		assert.Error(t, DecodeStrict([]byte(`{}`), &u))
	})

	t.Run("Null", func(t *testing.T) {
		var u User
		assert.Error(t, DecodeStrict([]byte(`null`), &u))
	})

	t.Run("TrailingData", func(t *testing.T) {
		var c Company
		err := DecodeStrict([]byte(`{"name":"a"} {"name":"b"}`), &c)
		assert.Error(t, err)
	})
}

func TestContentValue(t *testing.T) {
	value, err := EncodeContentValue(Content{Key: "key1", Title: "title1", Body: "body1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"title1","body":"body1"}`, value)
	assert.NotContains(t, value, "key1")

	content, err := DecodeContentValue("key1", value)
	require.NoError(t, err)
	assert.Equal(t, Content{Key: "key1", Title: "title1", Body: "body1"}, content)

	_, err = DecodeContentValue("key1", "not json")
	assert.Error(t, err)

	for _, value := range []string{`{}`, `null`, `{"title":"t"}`, `{"title":"t","body":null}`} {
		_, err = DecodeContentValue("key1", value)
		assert.Error(t, err, value)
	}

	content, err = DecodeContentValue("key1", `{"title":"t","body":""}`)
	require.NoError(t, err)
	assert.Equal(t, Content{Key: "key1", Title: "t"}, content)
}
