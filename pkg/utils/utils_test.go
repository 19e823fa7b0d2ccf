package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenRandomID(t *testing.T) {
	id := GenRandomID()
	assert.Len(t, id, 32)
	assert.NotEqual(t, id, GenRandomID())
}

func Test_GenUserPassword(t *testing.T) {
	a := GenUserPassword("salt", "pwd")
	b := GenUserPassword("salt", "pwd")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, GenUserPassword("other", "pwd"))
}

func Test_GenTempPassword(t *testing.T) {
	pwd, err := GenTempPassword()
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, pwd, TEMP_PASSWORD_LENGTH)
	for _, c := range pwd {
		assert.True(t, strings.ContainsRune(tempPasswordChars, c), "unexpected char %q", c)
	}
}
