package models

import "testing"

func TestRatingValidateScores(t *testing.T) {
	cases := []struct {
		name    string
		rating  Rating
		wantErr bool
	}{
		{
			name:   "all valid",
			rating: Rating{Cleanliness: 5, Accuracy: 4, CheckIn: 3, Communication: 2, Location: 1, Value: 5},
		},
		{
			name:    "zero score",
			rating:  Rating{Cleanliness: 0, Accuracy: 4, CheckIn: 3, Communication: 2, Location: 1, Value: 5},
			wantErr: true,
		},
		{
			name:    "score above five",
			rating:  Rating{Cleanliness: 5, Accuracy: 6, CheckIn: 3, Communication: 2, Location: 1, Value: 5},
			wantErr: true,
		},
		{
			name:    "negative score",
			rating:  Rating{Cleanliness: 5, Accuracy: 4, CheckIn: -1, Communication: 2, Location: 1, Value: 5},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rating.ValidateScores()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRatingComputeAverage(t *testing.T) {
	cases := []struct {
		name     string
		rating   Rating
		expected float64
	}{
		{
			name:     "all fives",
			rating:   Rating{Cleanliness: 5, Accuracy: 5, CheckIn: 5, Communication: 5, Location: 5, Value: 5},
			expected: 5,
		},
		{
			name:     "mixed scores rounded",
			rating:   Rating{Cleanliness: 5, Accuracy: 4, CheckIn: 4, Communication: 3, Location: 5, Value: 4},
			expected: 4.17,
		},
		{
			name:     "all ones",
			rating:   Rating{Cleanliness: 1, Accuracy: 1, CheckIn: 1, Communication: 1, Location: 1, Value: 1},
			expected: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.rating.ComputeAverage()
			if got != tc.expected {
				t.Fatalf("expected %.2f, got %.2f", tc.expected, got)
			}
		})
	}
}
