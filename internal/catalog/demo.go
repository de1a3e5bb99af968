package catalog

import "github.com/iliyamo/travel-reservation/internal/model"

// demoPackages is the fixed dataset served when the backing store is
// unreachable or unconfigured.  The storefront stays browsable at the
// cost of showing static data.  Order matters: GetAll returns the
// slice as-is and tests pin the first element.
var demoPackages = []*model.Package{
	{
		ID:       "pkg-1",
		Title:    "일본 도쿄 & 오사카 5일",
		Location: "도쿄·오사카, 일본",
		Duration: "4박 5일",
		Price:    1200000,
		OriginalPrice: func() *int64 {
			v := int64(1500000)
			return &v
		}(),
		Rating:      4.8,
		ReviewCount: 324,
		Images:      []string{"https://img.example.com/demo/tokyo-1.jpg", "https://img.example.com/demo/osaka-1.jpg"},
		Highlights:  []string{"도쿄 시내 전일 자유 일정", "오사카 유니버설 스튜디오 입장권 포함"},
		Inclusions:  []string{"왕복 항공권", "4성급 호텔 4박", "조식 4회"},
		Exclusions:  []string{"여행자 보험", "개인 경비"},
		Itinerary: []model.ItineraryDay{
			{Day: 1, Title: "인천 출발 · 도쿄 도착", Description: "나리타 공항 도착 후 호텔 체크인", Accommodation: "도쿄 시내 호텔", Meals: model.MealFlags{Dinner: true}},
			{Day: 2, Title: "도쿄 시내 관광", Description: "아사쿠사, 시부야, 신주쿠", Accommodation: "도쿄 시내 호텔", Meals: model.MealFlags{Breakfast: true}},
			{Day: 3, Title: "도쿄 → 오사카 이동", Description: "신칸센 이동 후 도톤보리 자유 시간", Accommodation: "오사카 시내 호텔", Meals: model.MealFlags{Breakfast: true}},
			{Day: 4, Title: "유니버설 스튜디오", Description: "전일 자유 이용", Accommodation: "오사카 시내 호텔", Meals: model.MealFlags{Breakfast: true}},
			{Day: 5, Title: "오사카 출발 · 인천 도착", Description: "간사이 공항 출발", Meals: model.MealFlags{Breakfast: true}},
		},
		AvailableSpots: 16,
		Featured:       true,
	},
	{
		ID:             "pkg-2",
		Title:          "베트남 다낭 & 호이안 4일",
		Location:       "다낭·호이안, 베트남",
		Duration:       "3박 4일",
		Price:          890000,
		Rating:         4.6,
		ReviewCount:    211,
		Images:         []string{"https://img.example.com/demo/danang-1.jpg"},
		Highlights:     []string{"바나힐 골든브릿지", "호이안 야경 투어"},
		Inclusions:     []string{"왕복 항공권", "리조트 3박", "전 일정 차량"},
		Exclusions:     []string{"가이드 경비", "개인 경비"},
		AvailableSpots: 24,
		Featured:       true,
	},
	{
		ID:             "pkg-3",
		Title:          "스위스 알프스 일주 7일",
		Location:       "인터라켄·체르마트, 스위스",
		Duration:       "6박 7일",
		Price:          3450000,
		Rating:         4.9,
		ReviewCount:    98,
		Images:         []string{"https://img.example.com/demo/swiss-1.jpg"},
		Highlights:     []string{"융프라우 등정", "빙하특급 탑승"},
		Inclusions:     []string{"왕복 항공권", "스위스 트래블 패스", "호텔 6박"},
		Exclusions:     []string{"중식·석식", "여행자 보험"},
		AvailableSpots: 8,
		Featured:       false,
	},
	{
		ID:             "pkg-4",
		Title:          "제주도 힐링 3일",
		Location:       "제주, 대한민국",
		Duration:       "2박 3일",
		Price:          450000,
		Rating:         4.5,
		ReviewCount:    412,
		Images:         nil,
		Highlights:     []string{"성산일출봉 일출", "렌터카 포함"},
		Inclusions:     []string{"왕복 항공권", "렌터카 48시간", "호텔 2박"},
		Exclusions:     []string{"유류비", "식사"},
		AvailableSpots: 30,
		Featured:       false,
	},
}

// DemoPackages returns a copy of the fallback dataset.  The packages
// themselves are shared; callers must treat them as read-only.
func DemoPackages() []*model.Package {
	out := make([]*model.Package, len(demoPackages))
	copy(out, demoPackages)
	return out
}
