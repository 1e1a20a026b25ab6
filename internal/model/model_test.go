package model_test

import (
	"testing"

	"github.com/p7-projekt/mozart/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParameter_String(t *testing.T) {
	p := model.Parameter{ValueType: model.Int, Value: "42"}
	assert.Equal(t, "int(42)", p.String())
}
