package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dulaj69/itp-final-project-sub000/models"
)

func TestMatchAnswer(t *testing.T) {
	qas := []models.ChatbotQA{
		{Question: "delivery time", Answer: "Orders arrive within 7 working days.", Keywords: []string{"delivery", "shipping"}},
		{Question: "refund", Answer: "Refunds are processed after cancellation.", Keywords: []string{"refund", "money back"}},
	}

	tests := []struct {
		name        string
		question    string
		expected    string
		expectMatch bool
	}{
		{
			name:        "keyword hit",
			question:    "How long does shipping take?",
			expected:    "Orders arrive within 7 working days.",
			expectMatch: true,
		},
		{
			name:        "case insensitive",
			question:    "CAN I GET MY MONEY BACK?",
			expected:    "Refunds are processed after cancellation.",
			expectMatch: true,
		},
		{
			name:        "stored question as substring",
			question:    "what is your delivery time policy",
			expected:    "Orders arrive within 7 working days.",
			expectMatch: true,
		},
		{
			name:        "first entry wins when both match",
			question:    "delivery refund",
			expected:    "Orders arrive within 7 working days.",
			expectMatch: true,
		},
		{
			name:        "no hit",
			question:    "do you sell saffron wholesale?",
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, matched := MatchAnswer(tt.question, qas)
			assert.Equal(t, tt.expectMatch, matched)
			if tt.expectMatch {
				assert.Equal(t, tt.expected, answer)
			} else {
				assert.Empty(t, answer)
			}
		})
	}
}

func TestMatchAnswerEmptyQAList(t *testing.T) {
	answer, matched := MatchAnswer("anything", nil)
	assert.False(t, matched)
	assert.Empty(t, answer)
}
