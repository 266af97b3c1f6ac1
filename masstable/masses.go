package masstable

import "github.com/katalvlaran/nuclide/isotope"

// defaultMasses is the compiled-in atomic-mass table (g/mol).
// It covers every isotope appearing in the embedded decay dataset plus the
// light nuclides and actinides a fuel-cycle composition commonly tracks.
// Values are rounded to four decimals; isomers share the ground-state mass.
var defaultMasses = map[isotope.Iso]float64{
	// light nuclides
	10010:  1.0078,   // H-1
	10020:  2.0141,   // H-2
	10030:  3.0160,   // H-3
	80160:  15.9949,  // O-16
	// fission products
	380900: 89.9077,  // Sr-90
	390900: 89.9072,  // Y-90
	400900: 89.9047,  // Zr-90
	531310: 130.9061, // I-131
	541310: 130.9051, // Xe-131
	551330: 132.9055, // Cs-133
	551350: 134.9060, // Cs-135
	551370: 136.9071, // Cs-137
	561370: 136.9058, // Ba-137
	561371: 136.9058, // Ba-137m
	// decay-chain intermediates
	842180: 218.0090, // Po-218
	862220: 222.0176, // Rn-222
	872230: 223.0197, // Fr-223
	882230: 223.0185, // Ra-223
	882260: 226.0254, // Ra-226
	882280: 228.0311, // Ra-228
	892270: 227.0278, // Ac-227
	902270: 227.0277, // Th-227
	902290: 229.0318, // Th-229
	902300: 230.0331, // Th-230
	902310: 231.0363, // Th-231
	902320: 232.0381, // Th-232
	902340: 234.0436, // Th-234
	912310: 231.0359, // Pa-231
	912330: 233.0402, // Pa-233
	912340: 234.0433, // Pa-234
	// uranium
	922320: 232.0372, // U-232
	922330: 233.0396, // U-233
	922340: 234.0410, // U-234
	922350: 235.0439, // U-235
	922360: 236.0456, // U-236
	922380: 238.0508, // U-238
	// transuranics
	932370: 237.0482, // Np-237
	942380: 238.0496, // Pu-238
	942390: 239.0522, // Pu-239
	942400: 240.0538, // Pu-240
	942410: 241.0569, // Pu-241
	942420: 242.0587, // Pu-242
	952410: 241.0568, // Am-241
	952430: 243.0614, // Am-243
	962440: 244.0628, // Cm-244
}
