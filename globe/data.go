package globe

import "math/rand"

// Boundaries returns the built-in coastline dataset: coarse closed
// polygon outlines of the major landmasses, latitude first. The shapes
// are deliberately rough; the land lookup quantizes to 1-degree cells
// anyway, and a higher-resolution source can be swapped in through
// LoadBoundaries without touching anything else.
func Boundaries() []Boundary {
	return []Boundary{
		{Name: "North America", Outline: []GeoPoint{
			{71, -156}, {69, -163}, {66, -164}, {64, -161}, {60, -166},
			{58, -158}, {58, -152}, {60, -146}, {59, -139}, {57, -135},
			{54, -130}, {51, -127}, {49, -124}, {46, -124}, {40, -124},
			{34, -120}, {32, -117}, {28, -114}, {23, -110}, {22, -106},
			{19, -105}, {16, -99}, {15, -93}, {13, -87}, {9, -84},
			{8, -80}, {11, -83}, {15, -83}, {16, -88}, {18, -88},
			{21, -87}, {21, -90}, {19, -91}, {18, -94}, {21, -97},
			{26, -97}, {29, -95}, {30, -90}, {29, -83}, {25, -81},
			{27, -80}, {31, -81}, {35, -76}, {39, -74}, {41, -70},
			{44, -66}, {44, -63}, {47, -60}, {48, -54}, {52, -56},
			{55, -60}, {58, -62}, {60, -65}, {61, -78}, {55, -77},
			{51, -79}, {57, -92}, {61, -94}, {64, -88}, {66, -86},
			{68, -95}, {68, -105}, {69, -115}, {70, -125}, {69, -135},
			{70, -141},
		}},
		{Name: "Greenland", Outline: []GeoPoint{
			{83, -35}, {81, -25}, {77, -20}, {73, -22}, {70, -25},
			{65, -37}, {60, -44}, {62, -50}, {66, -53}, {70, -54},
			{74, -57}, {77, -70}, {80, -62}, {82, -50},
		}},
		{Name: "Iceland", Outline: []GeoPoint{
			{66, -22}, {66, -16}, {65, -14}, {64, -15}, {63, -19},
			{64, -22}, {65, -24},
		}},
		{Name: "Cuba", Outline: []GeoPoint{
			{23, -82}, {22, -84}, {20, -77}, {20, -75}, {21, -79},
		}},
		{Name: "Hispaniola", Outline: []GeoPoint{
			{20, -72}, {18, -69}, {18, -72}, {19, -74},
		}},
		{Name: "South America", Outline: []GeoPoint{
			{12, -72}, {10, -60}, {5, -52}, {0, -50}, {-3, -42},
			{-5, -35}, {-8, -35}, {-13, -38}, {-20, -40}, {-23, -45},
			{-28, -49}, {-33, -53}, {-35, -57}, {-37, -57}, {-39, -62},
			{-42, -64}, {-47, -66}, {-51, -69}, {-54, -68}, {-53, -71},
			{-50, -74}, {-46, -74}, {-42, -73}, {-37, -73}, {-33, -72},
			{-27, -71}, {-20, -70}, {-14, -76}, {-6, -81}, {-3, -80},
			{1, -79}, {4, -77}, {7, -78}, {9, -76}, {11, -74},
		}},
		{Name: "Africa", Outline: []GeoPoint{
			{35, -6}, {37, 3}, {37, 10}, {33, 12}, {31, 20},
			{31, 32}, {27, 34}, {22, 37}, {15, 40}, {11, 43},
			{12, 51}, {5, 46}, {0, 42}, {-4, 39}, {-10, 40},
			{-15, 40}, {-20, 35}, {-26, 33}, {-29, 31}, {-34, 26},
			{-35, 20}, {-33, 18}, {-29, 16}, {-23, 14}, {-17, 11},
			{-12, 13}, {-6, 12}, {-1, 9}, {4, 9}, {4, 6},
			{5, 0}, {4, -6}, {7, -13}, {12, -17}, {15, -17},
			{21, -17}, {28, -13}, {31, -10}, {33, -8},
		}},
		{Name: "Madagascar", Outline: []GeoPoint{
			{-12, 49}, {-16, 50}, {-22, 48}, {-25, 47}, {-25, 45},
			{-20, 44}, {-16, 44}, {-13, 48},
		}},
		{Name: "Eurasia", Outline: []GeoPoint{
			{37, -9}, {43, -9}, {44, -1}, {48, -5}, {49, 0},
			{51, 2}, {53, 5}, {54, 9}, {57, 8}, {55, 10},
			{54, 11}, {54, 14}, {54, 19}, {56, 21}, {59, 24},
			{60, 28}, {60, 26}, {61, 22}, {63, 21}, {66, 22},
			{63, 17}, {60, 17}, {59, 18}, {56, 16}, {55, 13},
			{58, 11}, {59, 10}, {62, 5}, {65, 11}, {68, 15},
			{71, 26}, {70, 31}, {68, 40}, {66, 44}, {68, 46},
			{69, 60}, {71, 73}, {73, 80}, {77, 104}, {75, 113},
			{73, 127}, {71, 140}, {69, 160}, {67, 172}, {66, 179},
			{62, 179}, {61, 164}, {56, 162}, {51, 157}, {54, 156},
			{60, 161}, {59, 142}, {55, 137}, {53, 141}, {49, 140},
			{43, 132}, {39, 128}, {35, 129}, {34, 126}, {38, 125},
			{40, 122}, {39, 118}, {37, 122}, {34, 120}, {31, 122},
			{28, 121}, {24, 118}, {22, 114}, {21, 108}, {19, 106},
			{17, 107}, {13, 109}, {10, 105}, {13, 100}, {8, 100},
			{1, 104}, {5, 100}, {8, 98}, {14, 98}, {16, 94},
			{18, 94}, {22, 91}, {22, 88}, {20, 86}, {16, 82},
			{13, 80}, {8, 78}, {9, 76}, {15, 74}, {19, 72},
			{24, 67}, {25, 62}, {25, 60}, {23, 58}, {17, 55},
			{12, 44}, {16, 42}, {21, 39}, {28, 34}, {31, 34},
			{33, 35}, {36, 36}, {36, 30}, {37, 27}, {40, 26},
			{41, 29}, {42, 35}, {41, 41}, {43, 40}, {46, 38},
			{46, 33}, {46, 30}, {43, 28}, {41, 29}, {40, 26},
			{40, 23}, {37, 22}, {39, 20}, {41, 19}, {45, 13},
			{44, 13}, {42, 14}, {41, 16}, {40, 18}, {39, 17},
			{38, 16}, {40, 15}, {41, 13}, {42, 11}, {44, 9},
			{43, 7}, {42, 3}, {41, 2}, {38, 0}, {37, -2},
			{36, -5},
		}},
		{Name: "Great Britain", Outline: []GeoPoint{
			{58, -5}, {58, -3}, {53, 0}, {51, 1}, {50, -6},
			{53, -5}, {56, -6},
		}},
		{Name: "Ireland", Outline: []GeoPoint{
			{55, -8}, {54, -6}, {52, -6}, {51, -10}, {54, -10},
		}},
		{Name: "Sri Lanka", Outline: []GeoPoint{
			{10, 80}, {8, 82}, {6, 81}, {6, 80}, {9, 79},
		}},
		{Name: "Japan", Outline: []GeoPoint{
			{45, 142}, {44, 145}, {42, 143}, {40, 142}, {37, 141},
			{35, 140}, {33, 136}, {31, 131}, {33, 130}, {36, 136},
			{39, 140}, {43, 140},
		}},
		{Name: "Philippines", Outline: []GeoPoint{
			{18, 121}, {16, 122}, {13, 124}, {7, 126}, {6, 122},
			{10, 119}, {14, 120}, {18, 120},
		}},
		{Name: "Sumatra", Outline: []GeoPoint{
			{6, 95}, {2, 99}, {-4, 103}, {-6, 106}, {-4, 101},
			{1, 97},
		}},
		{Name: "Java", Outline: []GeoPoint{
			{-6, 105}, {-7, 110}, {-8, 114}, {-9, 113}, {-8, 109},
			{-7, 106},
		}},
		{Name: "Borneo", Outline: []GeoPoint{
			{7, 117}, {2, 118}, {-4, 114}, {-1, 110}, {1, 109},
			{4, 113},
		}},
		{Name: "Sulawesi", Outline: []GeoPoint{
			{1, 120}, {-2, 121}, {-5, 120}, {0, 119},
		}},
		{Name: "New Guinea", Outline: []GeoPoint{
			{-1, 131}, {-3, 135}, {-7, 141}, {-9, 143}, {-8, 138},
			{-5, 135}, {-2, 131},
		}},
		{Name: "Australia", Outline: []GeoPoint{
			{-11, 142}, {-16, 146}, {-20, 149}, {-25, 153}, {-28, 154},
			{-32, 153}, {-37, 150}, {-38, 147}, {-38, 141}, {-35, 138},
			{-32, 134}, {-33, 124}, {-34, 119}, {-34, 115}, {-31, 115},
			{-26, 113}, {-22, 114}, {-20, 116}, {-18, 122}, {-14, 127},
			{-12, 131}, {-15, 136}, {-17, 140}, {-14, 142},
		}},
		{Name: "New Zealand North", Outline: []GeoPoint{
			{-34, 173}, {-37, 176}, {-39, 177}, {-41, 175}, {-37, 174},
			{-35, 173},
		}},
		{Name: "New Zealand South", Outline: []GeoPoint{
			{-41, 174}, {-44, 173}, {-46, 170}, {-46, 167}, {-44, 168},
			{-42, 171},
		}},
		// The ice sheet reaches the map edge, so a simple band in
		// lat/lon space stands in for the whole continent.
		{Name: "Antarctica", Outline: []GeoPoint{
			{-64, -180}, {-64, 180}, {-90, 180}, {-90, -180},
		}},
	}
}

// City is a named point used for night-side city lights.
type City struct {
	Name string
	Loc  GeoPoint
}

// Cities returns the fixed set of major cities rendered as lights on
// the dark side of the globe.
func Cities() []City {
	return []City{
		{"New York", GeoPoint{40.7, -74.0}},
		{"Los Angeles", GeoPoint{34.0, -118.2}},
		{"Chicago", GeoPoint{41.9, -87.6}},
		{"Houston", GeoPoint{29.8, -95.4}},
		{"Phoenix", GeoPoint{33.4, -112.1}},
		{"Denver", GeoPoint{39.7, -105.0}},
		{"San Francisco", GeoPoint{37.8, -122.4}},
		{"Seattle", GeoPoint{47.6, -122.3}},
		{"Miami", GeoPoint{25.8, -80.2}},
		{"London", GeoPoint{51.5, -0.1}},
		{"Paris", GeoPoint{48.9, 2.4}},
		{"Berlin", GeoPoint{52.5, 13.4}},
		{"Rome", GeoPoint{41.9, 12.5}},
		{"Madrid", GeoPoint{40.4, -3.7}},
		{"Moscow", GeoPoint{55.8, 37.6}},
		{"St Petersburg", GeoPoint{59.9, 30.3}},
		{"Tehran", GeoPoint{35.7, 51.4}},
		{"Cairo", GeoPoint{30.0, 31.2}},
		{"Cape Town", GeoPoint{-33.9, 18.4}},
		{"Johannesburg", GeoPoint{-26.2, 28.0}},
		{"Mexico City", GeoPoint{19.4, -99.1}},
		{"Sao Paulo", GeoPoint{-23.5, -46.6}},
		{"Buenos Aires", GeoPoint{-34.6, -58.4}},
		{"Rio de Janeiro", GeoPoint{-22.9, -43.2}},
		{"Delhi", GeoPoint{28.6, 77.2}},
		{"Mumbai", GeoPoint{19.1, 72.9}},
		{"Chennai", GeoPoint{13.1, 80.3}},
		{"Kolkata", GeoPoint{22.6, 88.4}},
		{"Shanghai", GeoPoint{31.2, 121.5}},
		{"Beijing", GeoPoint{39.9, 116.4}},
		{"Guangzhou", GeoPoint{23.1, 113.3}},
		{"Hong Kong", GeoPoint{22.3, 114.2}},
		{"Tokyo", GeoPoint{35.7, 139.7}},
		{"Osaka", GeoPoint{34.7, 135.5}},
		{"Seoul", GeoPoint{37.6, 126.9}},
		{"Sydney", GeoPoint{-33.9, 151.2}},
		{"Melbourne", GeoPoint{-37.8, 144.9}},
		{"Brisbane", GeoPoint{-27.5, 153.0}},
		{"Singapore", GeoPoint{1.4, 103.8}},
		{"Bangkok", GeoPoint{13.8, 100.5}},
		{"Jakarta", GeoPoint{-6.2, 106.8}},
		{"Manila", GeoPoint{14.6, 121.0}},
	}
}

// CloudField generates the fixed cloud point set. The seed is constant
// so every run, and every test, sees the same sky.
func CloudField() []GeoPoint {
	rng := rand.New(rand.NewSource(42))
	var pts []GeoPoint
	for i := 0; i < 300; i++ {
		lat := -60 + rng.Float64()*130
		lon := -180 + rng.Float64()*360
		if rng.Float64() < 0.3 {
			pts = append(pts, GeoPoint{Lat: lat, Lon: lon})
		}
	}
	return pts
}
