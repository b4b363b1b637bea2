package services

import (
	"testing"

	"resort/models"

	"github.com/lib/pq"
)

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trims and lowers", input: "  Deluxe  ", expected: "deluxe"},
		{name: "strips diacritics", input: "Phòng Đôi", expected: "phong doi"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeInput(tc.input)
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestHasAllAmenities(t *testing.T) {
	roomType := models.RoomType{
		Amenities: pq.StringArray{"Wifi", "Hồ bơi", "Điều hòa"},
	}

	cases := []struct {
		name     string
		required []string
		expected bool
	}{
		{name: "no requirement", required: nil, expected: true},
		{name: "subset", required: []string{"Wifi"}, expected: true},
		{name: "diacritics ignored", required: []string{"ho boi", "wifi"}, expected: true},
		{name: "missing amenity", required: []string{"Wifi", "Bãi đậu xe"}, expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HasAllAmenities(roomType, tc.required)
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestFilterAndScoreRooms(t *testing.T) {
	rooms := []models.Room{
		{
			RoomId: 1,
			RoomType: models.RoomType{
				TypeName:    "Deluxe",
				Description: "Phòng deluxe hướng biển",
				Amenities:   pq.StringArray{"Wifi"},
			},
		},
		{
			RoomId: 2,
			RoomType: models.RoomType{
				TypeName:    "Standard",
				Description: "Phòng tiêu chuẩn",
				Amenities:   pq.StringArray{"Wifi"},
			},
		},
	}

	scored := FilterAndScoreRooms("deluxe", rooms)

	if len(scored) == 0 {
		t.Fatalf("expected at least one scored room")
	}
	if scored[0].Room.RoomId != 1 {
		t.Fatalf("expected deluxe room first, got room %d", scored[0].Room.RoomId)
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Fatalf("rooms not sorted by score")
		}
	}
}
