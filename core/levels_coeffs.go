package core

// Hybrid-level A/B coefficients for the supported ECMWF model-level schemes.
// A is in Pa, B dimensionless; half-level pressure at interface i is
// A[i] + B[i]*sp. Values are the published tables for the 60-level
// (ERA-Interim) and 137-level (ERA5) configurations; index 0 is the model
// top, index N the surface.

var hybridA60 = [61]float64{
	0.0, 20.0, 38.425338745, 63.647796631, 95.636962891,
	134.48330688, 180.58435059, 234.77905273, 298.49584961, 373.97192383,
	464.61816406, 575.65112305, 713.21801758, 883.66040039, 1094.8347168,
	1356.4746094, 1680.6403809, 2082.2739258, 2579.8886719, 3196.4216309,
	3960.2915039, 4906.7070313, 6018.0195313, 7306.6328125, 8765.0546875,
	10376.125, 12077.445313, 13775.324219, 15379.804688, 16819.472656,
	18045.183594, 19027.695313, 19755.109375, 20222.203125, 20429.863281,
	20384.480469, 20097.402344, 19584.328125, 18864.75, 17961.359375,
	16899.46875, 15706.449219, 14411.125, 13043.21875, 11632.757813,
	10209.5, 8802.3554688, 7438.8046875, 6144.3164063, 4941.7773438,
	3850.9133301, 2887.6965332, 2063.7797852, 1385.9125977, 855.36181641,
	467.33349609, 210.39389038, 65.88923645, 7.3677425385, 0.0,
	0.0,
}

var hybridB60 = [61]float64{
	0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 7.5823496445e-05,
	0.00046139489859, 0.0018151560798, 0.0050811171532, 0.011142909527, 0.020677875727,
	0.034121163189, 0.051690407097, 0.073533833027, 0.099674701691, 0.13002252579,
	0.16438430548, 0.20247590542, 0.24393314123, 0.28832298517, 0.33515489101,
	0.38389211893, 0.43396294117, 0.4847715497, 0.53570991755, 0.58616840839,
	0.63554745913, 0.68326860666, 0.72878581285, 0.77159661055, 0.81125342846,
	0.84737491608, 0.8796569109, 0.90788388252, 0.93194031715, 0.95182150602,
	0.96764522791, 0.97966271639, 0.98827010393, 0.99401944876, 0.99763011932,
	1.0,
}

var hybridA137 = [138]float64{
	0.0, 2.000365, 3.102241, 4.666084, 6.827977, 9.746966,
	13.605424, 18.608931, 24.985718, 32.98571, 42.879242, 54.955463,
	69.520576, 86.895882, 107.415741, 131.425507, 159.279404, 191.338562,
	227.968948, 269.539581, 316.420746, 368.982361, 427.592499, 492.616028,
	564.413452, 643.339905, 729.744141, 823.967834, 926.34491, 1037.201172,
	1156.853638, 1285.610352, 1423.770142, 1571.622925, 1729.448975, 1897.519287,
	2076.095947, 2265.431641, 2465.770508, 2677.348145, 2900.391357, 3135.119385,
	3381.743652, 3640.468262, 3911.490479, 4194.930664, 4490.817383, 4799.149414,
	5119.89502, 5452.990723, 5798.344727, 6156.074219, 6526.946777, 6911.870605,
	7311.869141, 7727.412109, 8159.354004, 8608.525391, 9076.400391, 9562.682617,
	10065.978516, 10584.631836, 11116.662109, 11660.067383, 12211.547852, 12766.873047,
	13324.668945, 13881.331055, 14432.139648, 14975.615234, 15508.256836, 16026.115234,
	16527.322266, 17008.789063, 17467.613281, 17901.621094, 18308.433594, 18685.71875,
	19031.289063, 19343.511719, 19620.042969, 19859.390625, 20059.931641, 20219.664063,
	20337.863281, 20412.308594, 20442.078125, 20425.71875, 20361.816406, 20249.511719,
	20087.085938, 19874.025391, 19608.572266, 19290.226563, 18917.460938, 18489.707031,
	18006.925781, 17471.839844, 16888.6875, 16262.046875, 15596.695313, 14898.453125,
	14173.324219, 13427.769531, 12668.257813, 11901.339844, 11133.304688, 10370.175781,
	9617.515625, 8880.453125, 8163.375, 7470.34375, 6804.421875, 6168.53125,
	5564.382813, 4993.796875, 4457.375, 3955.960938, 3489.234375, 3057.265625,
	2659.140625, 2294.242188, 1961.5, 1659.476563, 1387.546875, 1143.25,
	926.507813, 734.992188, 568.0625, 424.414063, 302.476563, 202.484375,
	122.101563, 62.78125, 22.835938, 3.757813, 0.0, 0.0,
}

var hybridB137 = [138]float64{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 7e-06, 2.4e-05, 5.9e-05, 0.000112, 0.000199,
	0.00034, 0.000562, 0.00089, 0.001353, 0.001992, 0.002857,
	0.003971, 0.005378, 0.007133, 0.009261, 0.011806, 0.014816,
	0.018318, 0.022355, 0.026964, 0.032176, 0.038026, 0.044548,
	0.051773, 0.059728, 0.068448, 0.077958, 0.088286, 0.099462,
	0.111505, 0.124448, 0.138313, 0.153125, 0.16891, 0.185689,
	0.203491, 0.222333, 0.242244, 0.263242, 0.285354, 0.308598,
	0.332939, 0.358254, 0.384363, 0.411125, 0.438391, 0.466003,
	0.4938, 0.521619, 0.549301, 0.576692, 0.603648, 0.630036,
	0.655736, 0.680643, 0.704669, 0.727739, 0.749797, 0.770798,
	0.790717, 0.809536, 0.827256, 0.843881, 0.859432, 0.873929,
	0.887408, 0.8999, 0.911448, 0.922096, 0.931881, 0.94086,
	0.949064, 0.95655, 0.963352, 0.969513, 0.975078, 0.980072,
	0.984542, 0.9885, 0.991984, 0.995003, 0.99763, 1.0,
}
