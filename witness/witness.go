// Package witness holds the two precomputed Miller-Rabin witness tables
// that let primality.IsPrime32/IsPrime64 decide primality deterministically
// with O(1) strong-probable-prime checks, and the hash functions that index
// into them.
//
// The table contents were computed by exhaustive verification against the
// published list of base-2 Fermat pseudoprimes below 2^64 (see
// http://www.cecm.sfu.ca/Pseudoprimes/index-2-to-64.html) and against every
// 32-bit integer; they must be reproduced bit-for-bit, not regenerated.
package witness

// SPDX-License-Identifier: Apache-2.0

// HashU32 returns the 8-bit index into BasesU32 for an odd n > 120 with no
// factor in {2, 3, 5, 7}.
func HashU32(n uint32) uint8 {
	h := uint64(n) // widen: the hash multiplies need 64-bit arithmetic
	h = ((h >> 16) ^ h) * 0x979BC64F
	h = ((h >> 16) ^ h) * 0x979BC64F
	h = ((h >> 16) ^ h) & 0xFF
	return uint8(h)
}

// HashU64 returns the 7-bit index into BasesU64 for an n that has already
// passed SPRP tests for bases 2 and 15 and is >= 55245642489451.
func HashU64(n uint64) uint8 {
	h := n
	h = ((h >> 32) ^ h) * 0x0123456789ABCE1B
	h = ((h >> 32) ^ h) * 0x0123456789ABCE1B
	h = (h >> 32) ^ h
	return uint8(h & 0x7F)
}

// BasesU32 holds 256 single-witness Miller-Rabin bases, indexed by
// HashU32(n). Using BasesU32[HashU32(n)] as the sole SPRP base is exact for
// every 32-bit n (idea from Forisek & Jancina,
// http://ceur-ws.org/Vol-1326/020-Forisek.pdf).
var BasesU32 = [256]uint16{
	4718, 496, 49848, 7899, 9378, 6345, 445, 5874, 5974, 2979, 7007, 1450,
	2810, 4529, 5367, 4371, 1938, 1817, 2230, 303, 8022, 3065, 1016, 2636,
	266, 4283, 1621, 10756, 1925, 3393, 333, 1889, 221, 2522, 408, 5453,
	7401, 13090, 272, 15, 1098, 5474, 306, 2779, 2750, 1168, 2813, 5210,
	1184, 2936, 592, 13, 26448, 1650, 7332, 1069, 1738, 239, 3804, 603,
	838, 960, 990, 1950, 353, 20014, 10077, 811, 7695, 4367, 6160, 2026,
	2913, 2093, 3977, 1776, 523, 658, 2838, 799, 2406, 6682, 429, 349,
	3419, 394, 15585, 11938, 1839, 1537, 1641, 3454, 10830, 7324, 2622,
	3643, 394, 4469, 2203, 1803, 2803, 649, 8560, 1020, 3002, 4618, 935,
	4512, 4901, 5109, 2911, 5876, 7168, 4776, 1066, 589, 2127, 3218, 11763,
	847, 19054, 4289, 1055, 22513, 2130, 923, 3869, 1766, 4299, 4777, 670,
	14780, 794, 4777, 4090, 12342, 3519, 3804, 1304, 1974, 4528, 3473, 4124,
	31802, 2139, 14323, 7514, 497, 4666, 1275, 111, 3030, 3652, 6203, 666,
	3436, 2117, 8449, 2038, 21405, 5208, 855, 981, 8756, 3268, 1732, 3463,
	935, 1882, 6816, 4400, 27093, 10614, 13098, 3560, 978, 1733, 2862, 1672,
	2951, 4686, 8641, 2549, 209, 341, 139, 1606, 894, 1266, 1941, 85, 2778, 1748,
	8605, 3270, 643, 3557, 170, 7660, 7988, 3327, 7002, 8775, 120, 718, 6343, 3054,
	745, 15047, 7717, 3796, 3484, 1032, 15349, 1514, 1029, 2925, 24747, 2783, 677,
	5048, 460, 926, 17501, 24350, 18728, 2485, 14389, 86, 1580, 1184, 1346, 628,
	6383, 603, 6540, 3430, 544, 4002, 3760, 5088, 3494, 207, 106, 4615, 25007,
	4766, 9622, 5488, 292, 9512, 740, 1431, 1238, 3934, 1216,
}

// BasesU64 holds 128 entries, each packing three Miller-Rabin witness bases
// for the 64-bit path: bits 22-31 (10 bits), bits 11-21 (11 bits), and bits
// 0-10 (11 bits). SPRP checks for bases 2 and 15 plus these three bases
// decide primality deterministically across the full 64-bit range. Indexed by
// HashU64(n).
var BasesU64 = [128]uint32{
	30330285, 47106639, 46413094, 30597089, 32685830, 48603013, 31731201,
	30882849, 32323190, 31809401, 32460779, 31018750, 46643634, 55569395,
	47527190, 31169886, 47035014, 46757681, 29665674, 46855109, 13282987,
	48000467, 48528943, 31677635, 32448203, 46492497, 54573569, 13344755,
	33025941, 31503603, 31366501, 16605162, 30593938, 54898543, 29594978,
	13397671, 54861751, 46811666, 46579609, 30071165, 47332791, 32083377,
	29414129, 49083953, 54851781, 31387055, 47854734, 46276271, 47281801,
	47168371, 46288613, 46411673, 46436729, 46593459, 48766345, 46839019,
	29805401, 30953201, 46366101, 46757450, 47656827, 46551453, 49248002,
	46325627, 47037614, 54785737, 29649726, 29438705, 30713225, 54769591,
	29387430, 47016861, 55525167, 30403346, 54652373, 47740057, 54787410,
	46173342, 47479489, 47512554, 55069605, 54776194, 29923315, 30091730,
	54595438, 47396503, 31403643, 47681117, 54909137, 47574678, 46378343,
	47380109, 46668438, 31235999, 46191638, 31346371, 29587573, 31905379,
	54573451, 46217313, 46792355, 30585869, 48133357, 47257067, 47098841,
	54795258, 29995981, 46946026, 29718225, 30979895, 46668518, 29966245,
	46995242, 30717277, 46806505, 46493615, 30845823, 47249078, 31161653,
	55328517, 29733086, 47443201, 56011898, 47602773, 30727243, 57425821,
	54771238, 54907391,
}

// UnpackU64 splits a BasesU64 entry into its three packed witness bases:
// bits 22-31 (10 bits), bits 11-21 (11 bits), and bits 0-10 (11 bits). Used
// alongside the fixed bases 2 and 15, for five SPRP checks in all.
func UnpackU64(entry uint32) (w1, w2, w3 uint64) {
	w1 = uint64(entry>>22) & 0x3FF
	w2 = uint64(entry>>11) & 0x7FF
	w3 = uint64(entry>>0) & 0x7FF
	return w1, w2, w3
}
