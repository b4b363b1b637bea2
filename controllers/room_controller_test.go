package controllers

import (
	"testing"

	"resort/constants"
	"resort/dto"
	"resort/models"

	"github.com/lib/pq"
)

func TestMatchesRoomFilter(t *testing.T) {
	roomType := models.RoomType{
		TypeName:         "Deluxe",
		GuestAmount:      4,
		BedAmount:        2,
		BedroomAmount:    1,
		SharedBathAmount: 1,
		Amenities:        pq.StringArray{"wifi", "ban công"},
	}

	cases := []struct {
		name    string
		room    models.Room
		request dto.FilterRoomsRequest
		want    bool
	}{
		{
			name: "phòng trống qua được lọc",
			room: models.Room{Status: constants.RoomStatusAvailable, RoomType: roomType},
			want: true,
		},
		{
			name: "phòng bảo trì bị loại",
			room: models.Room{Status: constants.RoomStatusMaintenance, RoomType: roomType},
			want: false,
		},
		{
			name: "phòng đang có khách bị loại",
			room: models.Room{Status: constants.RoomStatusOccupied, RoomType: roomType},
			want: false,
		},
		{
			name:    "phòng bảo trì bị loại kể cả khi khớp tiện nghi",
			room:    models.Room{Status: constants.RoomStatusMaintenance, RoomType: roomType},
			request: dto.FilterRoomsRequest{Amenities: []string{"wifi"}, GuestAmount: 2},
			want:    false,
		},
		{
			name:    "thiếu tiện nghi bị loại",
			room:    models.Room{Status: constants.RoomStatusAvailable, RoomType: roomType},
			request: dto.FilterRoomsRequest{Amenities: []string{"hồ bơi"}},
			want:    false,
		},
		{
			name:    "không đủ số khách bị loại",
			room:    models.Room{Status: constants.RoomStatusAvailable, RoomType: roomType},
			request: dto.FilterRoomsRequest{GuestAmount: 6},
			want:    false,
		},
		{
			name:    "đủ số khách và tiện nghi",
			room:    models.Room{Status: constants.RoomStatusAvailable, RoomType: roomType},
			request: dto.FilterRoomsRequest{Amenities: []string{"wifi"}, GuestAmount: 4, BedAmount: 2},
			want:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchesRoomFilter(tc.room, tc.request); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
