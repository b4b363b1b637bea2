package services

import (
	"testing"
	"time"

	"resort/constants"
	"resort/models"
)

func TestCanRedeem(t *testing.T) {
	cases := []struct {
		name            string
		usageCount      int
		quantityPerUser int
		expected        bool
	}{
		{name: "granted but unused", usageCount: 0, quantityPerUser: 1, expected: true},
		{name: "already used", usageCount: 1, quantityPerUser: 1, expected: false},
		{name: "multi use remaining", usageCount: 1, quantityPerUser: 3, expected: true},
		{name: "multi use exhausted", usageCount: 3, quantityPerUser: 3, expected: false},
		{name: "zero per user falls back to one", usageCount: 0, quantityPerUser: 0, expected: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := &models.UserPromotion{UsageCount: tc.usageCount}
			got := CanRedeem(entry, tc.quantityPerUser)
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestPromotionActiveForDate(t *testing.T) {
	promotion := &models.Promotion{
		FromDate: "01/01/2025",
		ToDate:   "31/01/2025",
		Status:   constants.PromotionStatusActive,
	}

	cases := []struct {
		name     string
		status   int
		now      time.Time
		expected bool
	}{
		{name: "inside window", status: constants.PromotionStatusActive, now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), expected: true},
		{name: "first day", status: constants.PromotionStatusActive, now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "last day", status: constants.PromotionStatusActive, now: time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC), expected: true},
		{name: "before window", status: constants.PromotionStatusActive, now: time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC), expected: false},
		{name: "after window", status: constants.PromotionStatusActive, now: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), expected: false},
		{name: "inactive", status: constants.PromotionStatusInactive, now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			promotion.Status = tc.status
			got := PromotionActiveForDate(promotion, tc.now)
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
