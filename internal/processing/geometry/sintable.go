package geometry

// sinTable holds sin(d) for whole degrees d in [0, 450] at float32 precision, the
// table OpenCV's ellipse2Poly samples. cos(d) is sinTable[450-d].
var sinTable = [451]float32{
	0.0000000, 0.0174524, 0.0348995, 0.0523360, 0.0697565, 0.0871557, 0.1045285, 0.1218693,
	0.1391731, 0.1564345, 0.1736482, 0.1908090, 0.2079117, 0.2249511, 0.2419219, 0.2588190,
	0.2756374, 0.2923717, 0.3090170, 0.3255682, 0.3420201, 0.3583679, 0.3746066, 0.3907311,
	0.4067366, 0.4226183, 0.4383711, 0.4539905, 0.4694716, 0.4848096, 0.5000000, 0.5150381,
	0.5299193, 0.5446390, 0.5591929, 0.5735764, 0.5877853, 0.6018150, 0.6156615, 0.6293204,
	0.6427876, 0.6560590, 0.6691306, 0.6819984, 0.6946584, 0.7071068, 0.7193398, 0.7313537,
	0.7431448, 0.7547096, 0.7660444, 0.7771460, 0.7880108, 0.7986355, 0.8090170, 0.8191520,
	0.8290376, 0.8386706, 0.8480481, 0.8571673, 0.8660254, 0.8746197, 0.8829476, 0.8910065,
	0.8987940, 0.9063078, 0.9135455, 0.9205049, 0.9271839, 0.9335804, 0.9396926, 0.9455186,
	0.9510565, 0.9563048, 0.9612617, 0.9659258, 0.9702957, 0.9743701, 0.9781476, 0.9816272,
	0.9848078, 0.9876883, 0.9902681, 0.9925462, 0.9945219, 0.9961947, 0.9975641, 0.9986295,
	0.9993908, 0.9998477, 1.0000000, 0.9998477, 0.9993908, 0.9986295, 0.9975641, 0.9961947,
	0.9945219, 0.9925462, 0.9902681, 0.9876883, 0.9848078, 0.9816272, 0.9781476, 0.9743701,
	0.9702957, 0.9659258, 0.9612617, 0.9563048, 0.9510565, 0.9455186, 0.9396926, 0.9335804,
	0.9271839, 0.9205049, 0.9135455, 0.9063078, 0.8987940, 0.8910065, 0.8829476, 0.8746197,
	0.8660254, 0.8571673, 0.8480481, 0.8386706, 0.8290376, 0.8191520, 0.8090170, 0.7986355,
	0.7880108, 0.7771460, 0.7660444, 0.7547096, 0.7431448, 0.7313537, 0.7193398, 0.7071068,
	0.6946584, 0.6819984, 0.6691306, 0.6560590, 0.6427876, 0.6293204, 0.6156615, 0.6018150,
	0.5877853, 0.5735764, 0.5591929, 0.5446390, 0.5299193, 0.5150381, 0.5000000, 0.4848096,
	0.4694716, 0.4539905, 0.4383711, 0.4226183, 0.4067366, 0.3907311, 0.3746066, 0.3583679,
	0.3420201, 0.3255682, 0.3090170, 0.2923717, 0.2756374, 0.2588190, 0.2419219, 0.2249511,
	0.2079117, 0.1908090, 0.1736482, 0.1564345, 0.1391731, 0.1218693, 0.1045285, 0.0871557,
	0.0697565, 0.0523360, 0.0348995, 0.0174524, 0.0000000, -0.0174524, -0.0348995, -0.0523360,
	-0.0697565, -0.0871557, -0.1045285, -0.1218693, -0.1391731, -0.1564345, -0.1736482, -0.1908090,
	-0.2079117, -0.2249511, -0.2419219, -0.2588190, -0.2756374, -0.2923717, -0.3090170, -0.3255682,
	-0.3420201, -0.3583679, -0.3746066, -0.3907311, -0.4067366, -0.4226183, -0.4383711, -0.4539905,
	-0.4694716, -0.4848096, -0.5000000, -0.5150381, -0.5299193, -0.5446390, -0.5591929, -0.5735764,
	-0.5877853, -0.6018150, -0.6156615, -0.6293204, -0.6427876, -0.6560590, -0.6691306, -0.6819984,
	-0.6946584, -0.7071068, -0.7193398, -0.7313537, -0.7431448, -0.7547096, -0.7660444, -0.7771460,
	-0.7880108, -0.7986355, -0.8090170, -0.8191520, -0.8290376, -0.8386706, -0.8480481, -0.8571673,
	-0.8660254, -0.8746197, -0.8829476, -0.8910065, -0.8987940, -0.9063078, -0.9135455, -0.9205049,
	-0.9271839, -0.9335804, -0.9396926, -0.9455186, -0.9510565, -0.9563048, -0.9612617, -0.9659258,
	-0.9702957, -0.9743701, -0.9781476, -0.9816272, -0.9848078, -0.9876883, -0.9902681, -0.9925462,
	-0.9945219, -0.9961947, -0.9975641, -0.9986295, -0.9993908, -0.9998477, -1.0000000, -0.9998477,
	-0.9993908, -0.9986295, -0.9975641, -0.9961947, -0.9945219, -0.9925462, -0.9902681, -0.9876883,
	-0.9848078, -0.9816272, -0.9781476, -0.9743701, -0.9702957, -0.9659258, -0.9612617, -0.9563048,
	-0.9510565, -0.9455186, -0.9396926, -0.9335804, -0.9271839, -0.9205049, -0.9135455, -0.9063078,
	-0.8987940, -0.8910065, -0.8829476, -0.8746197, -0.8660254, -0.8571673, -0.8480481, -0.8386706,
	-0.8290376, -0.8191520, -0.8090170, -0.7986355, -0.7880108, -0.7771460, -0.7660444, -0.7547096,
	-0.7431448, -0.7313537, -0.7193398, -0.7071068, -0.6946584, -0.6819984, -0.6691306, -0.6560590,
	-0.6427876, -0.6293204, -0.6156615, -0.6018150, -0.5877853, -0.5735764, -0.5591929, -0.5446390,
	-0.5299193, -0.5150381, -0.5000000, -0.4848096, -0.4694716, -0.4539905, -0.4383711, -0.4226183,
	-0.4067366, -0.3907311, -0.3746066, -0.3583679, -0.3420201, -0.3255682, -0.3090170, -0.2923717,
	-0.2756374, -0.2588190, -0.2419219, -0.2249511, -0.2079117, -0.1908090, -0.1736482, -0.1564345,
	-0.1391731, -0.1218693, -0.1045285, -0.0871557, -0.0697565, -0.0523360, -0.0348995, -0.0174524,
	0.0000000, 0.0174524, 0.0348995, 0.0523360, 0.0697565, 0.0871557, 0.1045285, 0.1218693,
	0.1391731, 0.1564345, 0.1736482, 0.1908090, 0.2079117, 0.2249511, 0.2419219, 0.2588190,
	0.2756374, 0.2923717, 0.3090170, 0.3255682, 0.3420201, 0.3583679, 0.3746066, 0.3907311,
	0.4067366, 0.4226183, 0.4383711, 0.4539905, 0.4694716, 0.4848096, 0.5000000, 0.5150381,
	0.5299193, 0.5446390, 0.5591929, 0.5735764, 0.5877853, 0.6018150, 0.6156615, 0.6293204,
	0.6427876, 0.6560590, 0.6691306, 0.6819984, 0.6946584, 0.7071068, 0.7193398, 0.7313537,
	0.7431448, 0.7547096, 0.7660444, 0.7771460, 0.7880108, 0.7986355, 0.8090170, 0.8191520,
	0.8290376, 0.8386706, 0.8480481, 0.8571673, 0.8660254, 0.8746197, 0.8829476, 0.8910065,
	0.8987940, 0.9063078, 0.9135455, 0.9205049, 0.9271839, 0.9335804, 0.9396926, 0.9455186,
	0.9510565, 0.9563048, 0.9612617, 0.9659258, 0.9702957, 0.9743701, 0.9781476, 0.9816272,
	0.9848078, 0.9876883, 0.9902681, 0.9925462, 0.9945219, 0.9961947, 0.9975641, 0.9986295,
	0.9993908, 0.9998477, 1.0000000,
}
