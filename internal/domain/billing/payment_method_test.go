package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCardType(t *testing.T) {
	cases := []struct {
		number string
		want   string
	}{
		{"4111111111111111", CardVisa},
		{"4000 0566 5566 5556", CardVisa},
		{"5105105105105100", CardMastercard},
		{"5555555555554444", CardMastercard},
		{"340000000000009", CardAmex},
		{"370000000000002", CardAmex},
		{"6011000990139424", CardCredit},
		{"5605105105105100", CardCredit},
		{"", CardCredit},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, InferCardType(tc.number), "number %q", tc.number)
	}
}

func TestLast4Digits(t *testing.T) {
	assert.Equal(t, "1111", Last4Digits("4111111111111111"))
	assert.Equal(t, "5556", Last4Digits("4000 0566 5566 5556"))
	assert.Equal(t, "42", Last4Digits("42"))
}
