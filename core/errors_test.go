package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	//
	err := Error(EMISSING, "no font %s", "Bravura")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "no font Bravura", UserMessage(err))
	assert.Equal(t, "[122] no font Bravura: not found", err.Error())
	//
	outer := fmt.Errorf("loading: %w", err)
	assert.Equal(t, EMISSING, Code(outer), "expected code to be found in wrapped chain")
}

func TestWrapError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := WrapError(cause, EINVALID, "broken container")
	assert.Equal(t, EINVALID, Code(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "broken container", UserMessage(err))
	//
	err = WrapError(nil, EUNAVAILABLE, "")
	assert.Equal(t, "storage unavailable", UserMessage(err))
	assert.Equal(t, "[124] storage unavailable", err.Error())
	assert.Equal(t, "internal error", UserMessage(errors.New("x")))
	assert.Equal(t, "", UserMessage(nil))
}
