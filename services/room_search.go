package services

import (
	"sort"
	"strings"
	"sync"

	"resort/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// ScoredRoom là phòng kèm điểm phù hợp với chuỗi tìm kiếm
type ScoredRoom struct {
	Room  models.Room `json:"room"`
	Score int         `json:"score"`
}

// Hàm chuẩn hóa chuỗi
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	return 1.0 - float64(distance)/maxLen
}

// prepareAmenityList gom các tiện nghi duy nhất từ danh sách phòng cho closestmatch
func prepareAmenityList(rooms []models.Room) []string {
	uniqueValues := make(map[string]bool)
	for _, room := range rooms {
		for _, amenity := range room.RoomType.Amenities {
			if amenity != "" {
				uniqueValues[NormalizeInput(amenity)] = true
			}
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// calculateAmenityScore chấm điểm theo tiện nghi khớp gần đúng với query
func calculateAmenityScore(query string, amenities []string) int {
	maxAmenityScore := 12
	amenityScore := 0

	for _, amenity := range amenities {
		normalized := NormalizeInput(amenity)
		similarity := calculateSimilarity(query, normalized)
		if similarity > 0.7 || strings.Contains(query, normalized) {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	return amenityScore
}

// calculateKeyFeatureScore chấm điểm theo điểm nổi bật của loại phòng
func calculateKeyFeatureScore(query string, features []string) int {
	score := 0
	for _, feature := range features {
		normalized := NormalizeInput(feature)
		if strings.Contains(query, normalized) || calculateSimilarity(query, normalized) > 0.7 {
			score += 5
		}
	}
	return score
}

// calculateRoomScore tính điểm phù hợp cho một phòng
func calculateRoomScore(query string, room models.Room, cmAmenity *closestmatch.ClosestMatch) int {
	normalizedQuery := NormalizeInput(query)
	score := 0

	normalizedType := NormalizeInput(room.RoomType.TypeName)
	if normalizedType != "" && strings.Contains(normalizedQuery, normalizedType) {
		score += 20
	}

	normalizedDesc := NormalizeInput(room.RoomType.Description)
	if normalizedDesc != "" && strings.Contains(normalizedDesc, normalizedQuery) {
		score += 10
	}

	if cmAmenity != nil {
		closest := cmAmenity.Closest(normalizedQuery)
		if closest != "" && strings.Contains(normalizedQuery, closest) {
			score += 13
		}
	}

	score += calculateAmenityScore(normalizedQuery, room.RoomType.Amenities)
	score += calculateKeyFeatureScore(normalizedQuery, room.RoomType.KeyFeatures)

	return score
}

// FilterAndScoreRooms chấm điểm song song toàn bộ phòng rồi xếp theo điểm giảm dần
func FilterAndScoreRooms(query string, rooms []models.Room) []ScoredRoom {
	cmAmenity := createMatcher(prepareAmenityList(rooms))

	var filteredRooms []ScoredRoom
	scoreCh := make(chan ScoredRoom, len(rooms))
	var wg sync.WaitGroup

	for _, room := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			score := calculateRoomScore(query, room, cmAmenity)
			if score > 0 {
				scoreCh <- ScoredRoom{
					Room:  room,
					Score: score,
				}
			}
		}(room)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredRoom := range scoreCh {
		filteredRooms = append(filteredRooms, scoredRoom)
	}

	sort.SliceStable(filteredRooms, func(i, j int) bool {
		return filteredRooms[i].Score > filteredRooms[j].Score
	})

	return filteredRooms
}

// HasAllAmenities kiểm tra loại phòng chứa đủ các tiện nghi được yêu cầu
func HasAllAmenities(roomType models.RoomType, required []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]bool, len(roomType.Amenities))
	for _, amenity := range roomType.Amenities {
		have[NormalizeInput(amenity)] = true
	}
	for _, amenity := range required {
		if !have[NormalizeInput(amenity)] {
			return false
		}
	}
	return true
}
