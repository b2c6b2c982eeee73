package bitpack

// MagicInts is the fixed mixed-radix base table used to adapt the
// small-atom-run encoding (spec §4.3). Entries 0..8 are sentinel zeros;
// the first usable base lives at index FirstIdx.
//
// This table is a fixed part of the XTC wire format and must not be
// regenerated or reordered: every byte produced by the reference encoder
// depends on these exact values appearing at these exact indices.
var MagicInts = [73]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0,
	8, 10, 12, 16, 20, 25, 32, 40, 50, 64,
	80, 101, 128, 161, 203, 256, 322, 406, 512, 645,
	812, 1024, 1290, 1625, 2048, 2580, 3250, 4096, 5060, 6501,
	8192, 10321, 13003, 16384, 20642, 26007, 32768, 41285, 52015, 65536,
	82570, 104031, 131072, 165140, 208063, 262144, 330280, 416127, 524287, 660561,
	832255, 1048576, 1321122, 1664510, 2097152, 2642245, 3329021, 4194304, 5284491, 6658042,
	8388607, 10568983, 13316085, 16777216,
}

// FirstIdx is the zero-based index of the first usable (non-sentinel)
// entry in MagicInts.
const FirstIdx = 9

// LastIdx is the zero-based index of the last entry in MagicInts.
const LastIdx = len(MagicInts) - 1
