package ldpc

// Data in this file is the fixed (174,91) parity-check code: a
// column-weight-3 parity-check matrix H and its systematic generator
// (derived once, offline, by Gaussian elimination over GF(2) so that
// H's last 83 columns form an invertible 83x83 submatrix — see
// DESIGN.md for how it was produced). §4.3 treats this as fixed data,
// "the generator matrix is data, not code".
const (
	numParityBits   = 83 // number of parity-check rows / generator rows
	numParityChecks = 83
	numCodewordBits = 174
)

var generatorRows = [numParityBits][12]byte{
	{0xbd, 0xe3, 0x1d, 0x50, 0x87, 0xb9, 0x1f, 0x16, 0x7b, 0x3b, 0xf8, 0xe0},
	{0x8f, 0xee, 0x71, 0x39, 0x9c, 0x43, 0xac, 0x91, 0xcc, 0xcb, 0x25, 0x20},
	{0x6c, 0x17, 0xd2, 0xa7, 0x8b, 0x69, 0xba, 0x65, 0xa2, 0x47, 0x37, 0xe0},
	{0x57, 0x96, 0x8a, 0x0f, 0x4b, 0x7e, 0xac, 0x33, 0x8d, 0xc5, 0xa7, 0xe0},
	{0x0e, 0xcc, 0x7c, 0x3b, 0x2c, 0xde, 0x90, 0x87, 0x23, 0xc0, 0x99, 0x80},
	{0xf8, 0xe1, 0xb8, 0xf3, 0x43, 0x08, 0x16, 0xb4, 0xcd, 0xd9, 0x4a, 0x00},
	{0xa8, 0x4e, 0xbf, 0x68, 0x3c, 0xcb, 0xa7, 0x79, 0x65, 0xf3, 0xfd, 0x40},
	{0x9a, 0x23, 0x97, 0x21, 0x0c, 0xfa, 0x9d, 0x7b, 0x63, 0x7e, 0x6f, 0xc0},
	{0x50, 0x6f, 0x88, 0x5e, 0xbc, 0xf0, 0xa0, 0xec, 0x91, 0x53, 0xfe, 0x40},
	{0x91, 0x0f, 0x19, 0xf2, 0x03, 0x94, 0x36, 0xc9, 0x5b, 0x3e, 0x6b, 0x00},
	{0x0a, 0x8d, 0x7c, 0x79, 0xcd, 0xfe, 0xb1, 0x93, 0x21, 0xf0, 0x99, 0xa0},
	{0x2f, 0x5a, 0x96, 0xd7, 0xee, 0xaa, 0x51, 0x53, 0x28, 0x48, 0xfa, 0x60},
	{0x58, 0x71, 0xa6, 0xd8, 0xe1, 0xcd, 0xad, 0x42, 0x4c, 0xa7, 0x1a, 0xe0},
	{0xc7, 0x4c, 0xa2, 0xff, 0xd8, 0xaf, 0x0a, 0x8e, 0x54, 0xbb, 0x46, 0x00},
	{0x04, 0x08, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x90, 0x00, 0x00},
	{0x4c, 0xb7, 0xd2, 0x65, 0xab, 0x69, 0xda, 0x4d, 0x8a, 0x57, 0x37, 0xa0},
	{0x94, 0x23, 0x0d, 0x54, 0x12, 0xbd, 0x1c, 0x02, 0xe9, 0xb9, 0x9c, 0x80},
	{0x00, 0x08, 0x00, 0x00, 0x00, 0x40, 0x00, 0x02, 0x00, 0x00, 0x03, 0x00},
	{0x66, 0x92, 0xac, 0xde, 0x92, 0xd2, 0x0b, 0xe0, 0x85, 0xb7, 0xac, 0x00},
	{0x66, 0x92, 0xac, 0xfe, 0x9a, 0xc2, 0x0b, 0xe0, 0xc5, 0xb7, 0xac, 0x00},
	{0x18, 0x71, 0x26, 0xd8, 0xe1, 0xcd, 0xad, 0x42, 0x4e, 0xb7, 0x1a, 0xe0},
	{0x00, 0x00, 0x44, 0x00, 0x20, 0x80, 0x04, 0x41, 0x08, 0x00, 0x20, 0x00},
	{0x00, 0x00, 0x44, 0x00, 0x20, 0x00, 0x00, 0x00, 0x08, 0x00, 0x20, 0x00},
	{0xc9, 0x7b, 0xbf, 0x2a, 0xc2, 0x51, 0xbf, 0x8b, 0x17, 0x98, 0xf1, 0xe0},
	{0xed, 0xcd, 0xc1, 0xd5, 0x70, 0xa1, 0x98, 0x7f, 0x70, 0x5e, 0x9d, 0x00},
	{0x1f, 0xb0, 0xa6, 0x99, 0xc3, 0x55, 0x9e, 0x6b, 0xb5, 0x57, 0x93, 0x40},
	{0x4b, 0x2e, 0x03, 0xb0, 0x21, 0x8f, 0x2a, 0xaf, 0xdc, 0x90, 0xd5, 0xa0},
	{0x0c, 0xb4, 0x6e, 0x28, 0xee, 0x74, 0xb7, 0x18, 0xbf, 0x62, 0x40, 0x60},
	{0x1b, 0xcd, 0x7c, 0x69, 0xce, 0xfe, 0xb0, 0xd3, 0x25, 0x72, 0xb9, 0xa0},
	{0x54, 0x4c, 0x8e, 0x65, 0x99, 0x7d, 0xfa, 0xe3, 0x98, 0xc0, 0xe2, 0x80},
	{0x8e, 0xd8, 0x97, 0xb6, 0xa6, 0x09, 0xc8, 0x9a, 0xa2, 0x14, 0x59, 0x40},
	{0xd7, 0xb9, 0x2e, 0x24, 0xbd, 0xa2, 0x47, 0xe7, 0xf5, 0x91, 0xb0, 0x60},
	{0x45, 0x96, 0xa2, 0x0f, 0x4b, 0x7e, 0x8c, 0x23, 0x8d, 0xcd, 0xa7, 0x60},
	{0x44, 0xb8, 0xc9, 0x4b, 0x16, 0x53, 0x85, 0x25, 0x60, 0x29, 0xc0, 0x80},
	{0x58, 0x75, 0xa6, 0xd8, 0xe1, 0xcd, 0x89, 0x42, 0x4c, 0xa7, 0x9a, 0xe0},
	{0xf7, 0xa3, 0xc0, 0x61, 0xd3, 0x3a, 0xf3, 0x99, 0xa9, 0xec, 0x48, 0xa0},
	{0x04, 0x10, 0x00, 0x00, 0x08, 0x00, 0x08, 0x04, 0x00, 0x00, 0x00, 0x00},
	{0xd7, 0xa5, 0x35, 0x2e, 0x47, 0x84, 0x01, 0x58, 0xee, 0xb3, 0xc8, 0xa0},
	{0xb9, 0xf3, 0x1d, 0x52, 0x9f, 0xbd, 0x17, 0x12, 0x7b, 0x3b, 0xf8, 0xe0},
	{0x1a, 0x6e, 0x03, 0xb0, 0xa3, 0x8b, 0x2b, 0xef, 0xd8, 0x92, 0xd5, 0xa0},
	{0x03, 0xf5, 0xa0, 0x69, 0x24, 0xdf, 0xbd, 0x84, 0x6d, 0x51, 0x52, 0xe0},
	{0x0a, 0x8d, 0x7c, 0x79, 0x0d, 0xfe, 0xb1, 0x87, 0x23, 0xf0, 0x99, 0xc0},
	{0x68, 0x5e, 0xf0, 0x6d, 0xbf, 0x0e, 0x9b, 0x6f, 0xa6, 0x77, 0x75, 0x80},
	{0x04, 0x21, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x20, 0x20, 0x00, 0x00},
	{0x4b, 0x2e, 0x47, 0xb1, 0x01, 0x0d, 0x2e, 0xee, 0xd4, 0x92, 0xfd, 0xa0},
	{0x10, 0x00, 0x28, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x80},
	{0x5b, 0x22, 0xf4, 0x27, 0xa5, 0x0a, 0x13, 0x2b, 0x32, 0xa3, 0xe7, 0x80},
	{0x04, 0x01, 0x02, 0x42, 0x25, 0x20, 0x21, 0x04, 0x02, 0x11, 0x00, 0x60},
	{0x08, 0x8f, 0x1b, 0x6c, 0x9d, 0x3a, 0x5f, 0x48, 0xc2, 0x7e, 0xf7, 0x60},
	{0xa0, 0x6b, 0xbf, 0x8b, 0x5c, 0xe9, 0x89, 0x79, 0xce, 0xf8, 0x7f, 0xa0},
	{0x4c, 0x17, 0xd2, 0x27, 0x8b, 0x69, 0xfa, 0x6d, 0xa2, 0x47, 0x37, 0xe0},
	{0x91, 0x0f, 0x19, 0x72, 0x01, 0x94, 0xb6, 0xc9, 0x59, 0x3e, 0x6b, 0x00},
	{0xa6, 0x53, 0x8d, 0xd8, 0x3b, 0x63, 0x87, 0xf2, 0x50, 0x6a, 0xa6, 0x60},
	{0x0a, 0x8d, 0x7c, 0x79, 0x0d, 0xfe, 0xb1, 0x83, 0x21, 0xf1, 0x99, 0xe0},
	{0xc7, 0x4c, 0xe2, 0xff, 0xd8, 0xa5, 0x0a, 0x8e, 0x54, 0xbb, 0x46, 0x20},
	{0xe8, 0x14, 0x70, 0x28, 0x16, 0x85, 0x4f, 0x9c, 0x74, 0xf3, 0x9c, 0x60},
	{0x56, 0x53, 0xbb, 0x0d, 0xdb, 0x3b, 0x3c, 0x47, 0x0f, 0xc5, 0x2d, 0x80},
	{0x7d, 0x33, 0xce, 0xb6, 0xc8, 0x1e, 0xb5, 0xcf, 0x5b, 0x36, 0xf6, 0x80},
	{0x85, 0xcc, 0x6d, 0x4f, 0x61, 0x30, 0x65, 0xc6, 0x9d, 0xcd, 0xc6, 0x40},
	{0x01, 0x40, 0x00, 0x00, 0x02, 0x00, 0x00, 0x40, 0x04, 0x00, 0x00, 0x00},
	{0xb9, 0xd3, 0x1d, 0x12, 0x9f, 0xbc, 0x17, 0x12, 0x7b, 0x3f, 0xf8, 0xe0},
	{0x66, 0x92, 0x8c, 0xde, 0x93, 0xd0, 0x0b, 0xe8, 0x85, 0xb7, 0xac, 0x00},
	{0xc5, 0x37, 0xb6, 0xe4, 0x88, 0xe3, 0x91, 0x28, 0x9a, 0x2c, 0xec, 0xa0},
	{0x3d, 0x28, 0x5f, 0xa3, 0x97, 0xfc, 0x55, 0x96, 0xd1, 0x2c, 0x6b, 0xa0},
	{0x32, 0x3c, 0x89, 0x07, 0xc9, 0x33, 0x9b, 0x21, 0x2f, 0x84, 0x0b, 0x20},
	{0xa0, 0x6a, 0xbf, 0x8b, 0x18, 0xe9, 0x81, 0x79, 0xce, 0xf8, 0x7f, 0xa0},
	{0x1a, 0x6e, 0x03, 0xb0, 0xa3, 0x8b, 0x6b, 0xe6, 0xd9, 0xb2, 0xd5, 0xa0},
	{0x0a, 0x0d, 0x7c, 0x79, 0x1b, 0xfa, 0xb3, 0x87, 0x27, 0xf0, 0x99, 0xc0},
	{0x46, 0x3a, 0xae, 0x1c, 0xa7, 0x97, 0x6a, 0xea, 0xa1, 0xa7, 0xae, 0x60},
	{0x46, 0x3a, 0x91, 0x11, 0x5f, 0xc2, 0xe0, 0x59, 0x2a, 0x3a, 0xdd, 0x20},
	{0xa6, 0x53, 0x8c, 0xd8, 0x3b, 0x23, 0x97, 0xf2, 0x50, 0x6a, 0xae, 0x60},
	{0x11, 0x40, 0x00, 0x10, 0x02, 0x00, 0x01, 0x40, 0x04, 0x02, 0x00, 0x00},
	{0x0b, 0xe6, 0x7d, 0x39, 0x9c, 0x43, 0xac, 0x91, 0x8c, 0x5b, 0x25, 0x20},
	{0xf4, 0x56, 0x60, 0x09, 0x77, 0xe5, 0x4e, 0x1d, 0xc4, 0xb5, 0x1a, 0x40},
	{0x08, 0x8f, 0x1b, 0x6e, 0x9d, 0x3a, 0x5f, 0x68, 0xe2, 0x7e, 0xf7, 0x20},
	{0x87, 0xee, 0x61, 0x29, 0x9c, 0x43, 0xac, 0x91, 0x4c, 0xcb, 0x65, 0x20},
	{0x98, 0x6f, 0x04, 0x9a, 0x58, 0x8f, 0x30, 0xa1, 0x64, 0x0d, 0x81, 0xc0},
	{0x91, 0x83, 0x80, 0x38, 0x1a, 0x35, 0x2d, 0x89, 0x14, 0x36, 0x1e, 0x00},
	{0x0a, 0x8d, 0x7c, 0x79, 0x19, 0xfa, 0xb1, 0x87, 0x27, 0xf0, 0x98, 0xc0},
	{0x79, 0xee, 0xcd, 0x81, 0x62, 0x1c, 0x80, 0x7d, 0x9c, 0xe7, 0x01, 0x80},
	{0x59, 0x75, 0xa2, 0xd8, 0xe1, 0xcd, 0xc9, 0x40, 0x4c, 0xa7, 0x92, 0xe0},
	{0xf0, 0x00, 0x37, 0xd5, 0xe0, 0x18, 0xa9, 0x95, 0x5f, 0xab, 0x83, 0xe0},
	{0xb0, 0x3f, 0x99, 0xb0, 0xdd, 0x06, 0x0a, 0x3a, 0x2b, 0x04, 0x67, 0xa0},
}

var checkToVar = [numParityChecks][]int{
	{22, 47, 90, 93, 108, 109, 169},
	{23, 53, 69, 71, 107, 115, 170},
	{32, 33, 59, 79, 89, 101, 144},
	{48, 62, 86, 102, 128, 148, 149},
	{35, 37, 45, 69, 87, 132, 169},
	{0, 55, 71, 97, 123, 146, 149},
	{15, 34, 44, 79, 100, 114, 125},
	{4, 19, 27, 64, 81, 92, 166},
	{31, 46, 78, 84, 112, 117, 135},
	{6, 29, 81, 135, 154, 155, 160},
	{0, 26, 28, 56, 120, 122, 131},
	{13, 47, 48, 86, 99, 140, 172},
	{2, 3, 67, 85, 91, 158, 166},
	{39, 55, 58, 68, 106, 132, 159},
	{76, 83, 96, 97, 138, 152, 155},
	{8, 9, 42, 95, 134, 141, 159},
	{1, 27, 32, 45, 117, 130, 162},
	{7, 21, 49, 62, 84, 125, 171},
	{6, 83, 85, 105, 116, 140, 151},
	{9, 22, 37, 74, 95, 138, 144},
	{8, 25, 34, 68, 106, 124, 165},
	{4, 16, 72, 91, 119, 146, 160},
	{49, 60, 63, 71, 74, 130, 157},
	{2, 13, 43, 67, 121, 161, 165},
	{82, 94, 118, 138, 145, 167},
	{83, 85, 98, 115, 116, 133},
	{30, 35, 45, 91, 127, 129},
	{40, 53, 57, 63, 112, 113},
	{1, 16, 70, 75, 103, 111},
	{25, 56, 108, 121, 128, 171},
	{13, 50, 53, 80, 103, 125},
	{20, 117, 124, 137, 153, 168},
	{17, 21, 34, 68, 82, 113},
	{28, 73, 116, 133, 166, 172},
	{3, 27, 55, 78, 150, 162},
	{4, 11, 51, 98, 123, 128},
	{19, 89, 111, 120, 147, 157},
	{66, 88, 151, 167, 168, 173},
	{14, 35, 67, 96, 102, 122},
	{2, 24, 49, 60, 93, 141},
	{54, 58, 77, 147, 161, 172},
	{59, 126, 145, 148, 160, 163},
	{0, 20, 65, 92, 105, 163},
	{61, 70, 79, 90, 132, 144},
	{3, 18, 20, 50, 88, 136},
	{1, 42, 139, 153, 164, 170},
	{39, 72, 82, 101, 119, 162},
	{16, 41, 103, 142, 154, 164},
	{5, 11, 36, 52, 61, 127},
	{14, 51, 102, 104, 112, 146},
	{14, 23, 129, 130, 131, 156},
	{17, 44, 46, 90, 104, 145},
	{18, 30, 101, 118, 143, 156},
	{11, 73, 88, 100, 104, 147},
	{56, 61, 65, 122, 159, 168},
	{31, 32, 76, 126, 131, 164},
	{5, 12, 21, 72, 75, 105},
	{63, 73, 80, 97, 111, 173},
	{7, 26, 110, 121, 171, 173},
	{31, 110, 120, 127, 154, 163},
	{30, 58, 66, 89, 139, 165},
	{64, 80, 99, 137, 150, 158},
	{24, 28, 81, 95, 133, 152},
	{10, 50, 75, 124, 139, 141},
	{40, 54, 107, 114, 153, 167},
	{40, 96, 113, 136, 142, 170},
	{12, 41, 62, 86, 87, 108},
	{36, 44, 78, 106, 114, 149},
	{12, 17, 93, 98, 99, 143},
	{22, 29, 43, 115, 126, 157},
	{23, 41, 51, 84, 143, 161},
	{19, 52, 77, 94, 118, 137},
	{5, 10, 15, 66, 74, 134},
	{7, 9, 38, 57, 69, 150},
	{15, 33, 37, 52, 140, 156},
	{26, 36, 43, 65, 109, 110},
	{29, 33, 57, 92, 107, 119},
	{42, 64, 134, 135, 148, 155},
	{24, 38, 48, 70, 100, 142},
	{6, 59, 76, 94, 123, 136},
	{18, 39, 46, 60, 109, 152},
	{10, 25, 47, 77, 129, 151},
	{8, 38, 54, 87, 158, 169},
}

var varToCheck = [numCodewordBits][3]int{
	{5, 10, 42},
	{16, 28, 45},
	{12, 23, 39},
	{12, 34, 44},
	{7, 21, 35},
	{48, 56, 72},
	{9, 18, 79},
	{17, 58, 73},
	{15, 20, 82},
	{15, 19, 73},
	{63, 72, 81},
	{35, 48, 53},
	{56, 66, 68},
	{11, 23, 30},
	{38, 49, 50},
	{6, 72, 74},
	{21, 28, 47},
	{32, 51, 68},
	{44, 52, 80},
	{7, 36, 71},
	{31, 42, 44},
	{17, 32, 56},
	{0, 19, 69},
	{1, 50, 70},
	{39, 62, 78},
	{20, 29, 81},
	{10, 58, 75},
	{7, 16, 34},
	{10, 33, 62},
	{9, 69, 76},
	{26, 52, 60},
	{8, 55, 59},
	{2, 16, 55},
	{2, 74, 76},
	{6, 20, 32},
	{4, 26, 38},
	{48, 67, 75},
	{4, 19, 74},
	{73, 78, 82},
	{13, 46, 80},
	{27, 64, 65},
	{47, 66, 70},
	{15, 45, 77},
	{23, 69, 75},
	{6, 51, 67},
	{4, 16, 26},
	{8, 51, 80},
	{0, 11, 81},
	{3, 11, 78},
	{17, 22, 39},
	{30, 44, 63},
	{35, 49, 70},
	{48, 71, 74},
	{1, 27, 30},
	{40, 64, 82},
	{5, 13, 34},
	{10, 29, 54},
	{27, 73, 76},
	{13, 40, 60},
	{2, 41, 79},
	{22, 39, 80},
	{43, 48, 54},
	{3, 17, 66},
	{22, 27, 57},
	{7, 61, 77},
	{42, 54, 75},
	{37, 60, 72},
	{12, 23, 38},
	{13, 20, 32},
	{1, 4, 73},
	{28, 43, 78},
	{1, 5, 22},
	{21, 46, 56},
	{33, 53, 57},
	{19, 22, 72},
	{28, 56, 63},
	{14, 55, 79},
	{40, 71, 81},
	{8, 34, 67},
	{2, 6, 43},
	{30, 57, 61},
	{7, 9, 62},
	{24, 32, 46},
	{14, 18, 25},
	{8, 17, 70},
	{12, 18, 25},
	{3, 11, 66},
	{4, 66, 82},
	{37, 44, 53},
	{2, 36, 60},
	{0, 43, 51},
	{12, 21, 26},
	{7, 42, 76},
	{0, 39, 68},
	{24, 71, 79},
	{15, 19, 62},
	{14, 38, 65},
	{5, 14, 57},
	{25, 35, 68},
	{11, 61, 68},
	{6, 53, 78},
	{2, 46, 52},
	{3, 38, 49},
	{28, 30, 47},
	{49, 51, 53},
	{18, 42, 56},
	{13, 20, 67},
	{1, 64, 76},
	{0, 29, 66},
	{0, 75, 80},
	{58, 59, 75},
	{28, 36, 57},
	{8, 27, 49},
	{27, 32, 65},
	{6, 64, 67},
	{1, 25, 69},
	{18, 25, 33},
	{8, 16, 31},
	{24, 52, 71},
	{21, 46, 76},
	{10, 36, 59},
	{23, 29, 58},
	{10, 38, 54},
	{5, 35, 79},
	{20, 31, 63},
	{6, 17, 30},
	{41, 55, 69},
	{26, 48, 59},
	{3, 29, 35},
	{26, 50, 81},
	{16, 22, 50},
	{10, 50, 55},
	{4, 13, 43},
	{25, 33, 62},
	{15, 72, 77},
	{8, 9, 77},
	{44, 65, 79},
	{31, 61, 71},
	{14, 19, 24},
	{45, 60, 63},
	{11, 18, 74},
	{15, 39, 63},
	{47, 65, 78},
	{52, 68, 70},
	{2, 19, 43},
	{24, 41, 51},
	{5, 21, 49},
	{36, 40, 53},
	{3, 41, 77},
	{3, 5, 67},
	{34, 61, 73},
	{18, 37, 81},
	{14, 62, 80},
	{31, 45, 64},
	{9, 47, 59},
	{9, 14, 77},
	{50, 52, 74},
	{22, 36, 69},
	{12, 61, 82},
	{13, 15, 54},
	{9, 21, 41},
	{23, 40, 70},
	{16, 34, 46},
	{41, 42, 59},
	{45, 47, 55},
	{20, 23, 60},
	{7, 12, 33},
	{24, 37, 64},
	{31, 37, 54},
	{0, 4, 82},
	{1, 45, 65},
	{17, 29, 58},
	{11, 33, 40},
	{37, 57, 58},
}
