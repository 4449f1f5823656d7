package boardspec

// Hardware table extracted from WhatsMiner firmware: model, total chip count,
// chips per cooling domain, number of hashboards.
var specs = []Spec{
	{"M30KV10", 240, 3, 4},
	{"M30LV10", 144, 4, 4},
	{"M30S++V10", 255, 5, 4},
	{"M30S++V20", 255, 5, 4},
	{"M30S++VE30", 215, 5, 3},
	{"M30S++VE40", 225, 5, 3},
	{"M30S++VE50", 235, 5, 3},
	{"M30S++VF40", 156, 4, 3},
	{"M30S++VG30", 111, 3, 3},
	{"M30S++VG40", 117, 3, 3},
	{"M30S++VG50", 123, 3, 3},
	{"M30S++VH10", 82, 2, 3},
	{"M30S++VH100", 82, 2, 3},
	{"M30S++VH110", 105, 3, 3},
	{"M30S++VH20", 86, 2, 3},
	{"M30S++VH30", 111, 3, 3},
	{"M30S++VH40", 70, 2, 3},
	{"M30S++VH50", 74, 2, 3},
	{"M30S++VH60", 78, 2, 3},
	{"M30S++VH70", 70, 2, 3},
	{"M30S++VH80", 74, 2, 3},
	{"M30S++VH90", 78, 2, 3},
	{"M30S++VI30", 111, 3, 3},
	{"M30S++VJ20", 70, 2, 3},
	{"M30S++VJ30", 74, 2, 3},
	{"M30S++VJ50", 82, 2, 3},
	{"M30S++VJ60", 111, 3, 3},
	{"M30S++VJ70", 117, 3, 3},
	{"M30S++VK30", 74, 2, 2},
	{"M30S++VK40", 105, 3, 3},
	{"M30S+V100", 215, 5, 3},
	{"M30S+V10", 215, 5, 3},
	{"M30S+V20", 255, 5, 3},
	{"M30S+V40", 235, 5, 3},
	{"M30S+V50", 225, 5, 3},
	{"M30S+V60", 245, 5, 3},
	{"M30S+V70", 235, 5, 3},
	{"M30S+V80", 245, 5, 3},
	{"M30S+V90", 225, 5, 3},
	{"M30S+VE30", 148, 4, 3},
	{"M30S+VE40", 156, 4, 3},
	{"M30S+VE50", 164, 4, 3},
	{"M30S+VE60", 172, 4, 3},
	{"M30S+VF20", 111, 3, 3},
	{"M30S+VF30", 117, 3, 3},
	{"M30S+VG20", 82, 2, 3},
	{"M30S+VG30", 78, 2, 3},
	{"M30S+VG40", 105, 3, 3},
	{"M30S+VG50", 111, 3, 3},
	{"M30S+VG60", 86, 2, 3},
	{"M30S+VH10", 64, 2, 3},
	{"M30S+VH20", 66, 2, 3},
	{"M30S+VH30", 70, 2, 3},
	{"M30S+VH40", 74, 2, 3},
	{"M30S+VH50", 64, 2, 3},
	{"M30S+VH60", 66, 2, 3},
	{"M30S+VH70", 70, 2, 3},
	{"M30S+VI30", 86, 2, 3},
	{"M30S+VJ30", 105, 3, 3},
	{"M30S+VJ40", 117, 3, 3},
	{"M30SV10", 148, 4, 3},
	{"M30SV20", 156, 4, 3},
	{"M30SV30", 164, 4, 3},
	{"M30SV40", 172, 4, 3},
	{"M30SV50", 156, 4, 3},
	{"M30SV60", 164, 4, 3},
	{"M30SV80", 129, 3, 3},
	{"M30SVE10", 105, 3, 3},
	{"M30SVE20", 111, 3, 3},
	{"M30SVE30", 117, 3, 3},
	{"M30SVE40", 123, 3, 3},
	{"M30SVE50", 129, 3, 3},
	{"M30SVF10", 70, 2, 3},
	{"M30SVF20", 74, 2, 3},
	{"M30SVF30", 78, 2, 3},
	{"M30SVG10", 66, 2, 3},
	{"M30SVG20", 70, 2, 3},
	{"M30SVG30", 74, 2, 3},
	{"M30SVG40", 78, 2, 3},
	{"M30SVH10", 64, 2, 3},
	{"M30SVH20", 66, 2, 3},
	{"M30SVH40", 64, 2, 3},
	{"M30SVH50", 66, 2, 3},
	{"M30SVH60", 70, 2, 3},
	{"M30SVI20", 70, 2, 3},
	{"M30SVJ30", 105, 3, 3},
	{"M30V10", 105, 3, 3},
	{"M30V20", 111, 3, 3},
	{"M31HV10", 114, 3, 3},
	{"M31HV40", 136, 2, 4},
	{"M31LV10", 114, 3, 3},
	{"M31SEV10", 82, 2, 3},
	{"M31SEV20", 78, 2, 3},
	{"M31SEV30", 78, 2, 3},
	{"M31S+V100", 111, 3, 3},
	{"M31S+V10", 105, 3, 3},
	{"M31S+V20", 111, 3, 3},
	{"M31S+V30", 117, 3, 3},
	{"M31S+V40", 123, 3, 3},
	{"M31S+V50", 148, 4, 3},
	{"M31S+V60", 156, 4, 3},
	{"M31S+V80", 129, 3, 3},
	{"M31S+V90", 117, 3, 3},
	{"M31S+VE10", 82, 2, 3},
	{"M31S+VE20", 78, 2, 3},
	{"M31S+VE30", 105, 3, 3},
	{"M31S+VE40", 111, 3, 3},
	{"M31S+VE50", 117, 3, 3},
	{"M31S+VF20", 66, 2, 3},
	{"M31S+VG20", 66, 2, 3},
	{"M31S+VG30", 70, 2, 3},
	{"M31SV10", 105, 3, 3},
	{"M31SV20", 111, 3, 3},
	{"M31SV30", 117, 3, 3},
	{"M31SV50", 78, 2, 3},
	{"M31SV60", 105, 3, 3},
	{"M31SV90", 117, 3, 3},
	{"M31SVE10", 70, 2, 3},
	{"M31V10", 70, 2, 3},
	{"M31V20", 74, 2, 3},
	{"M32V10", 78, 2, 3},
	{"M32V20", 74, 2, 3},
	{"M33S++VG40", 174, 3, 4},
	{"M33S++VH20", 112, 2, 4},
	{"M33S+VG20", 112, 2, 4},
	{"M33S+VG30", 162, 3, 4},
	{"M33S+VH20", 100, 2, 4},
	{"M33SVG30", 116, 2, 4},
	{"M33V10", 33, 1, 3},
	{"M33V20", 62, 2, 3},
	{"M33V30", 66, 2, 3},
	{"M34S+VE10", 116, 2, 4},
	{"M36S++VH30", 80, 2, 4},
	{"M36S+VG30", 108, 3, 4},
	{"M36SVE10", 114, 3, 4},
	{"M39V10", 50, 2, 3},
	{"M39V20", 54, 2, 3},
	{"M39V30", 68, 2, 3},
	{"M50S++VK10", 117, 3, 3},
	{"M50S++VK20", 123, 3, 3},
	{"M50S++VK30", 156, 4, 3},
	{"M50S++VK40", 129, 3, 3},
	{"M50S++VK50", 135, 3, 3},
	{"M50S++VK60", 111, 3, 3},
	{"M50S++VL10", 82, 2, 3},
	{"M50S++VL20", 86, 2, 3},
	{"M50S++VL30", 111, 3, 3},
	{"M50S++VL40", 117, 3, 3},
	{"M50S++VL50", 105, 3, 3},
	{"M50S++VL60", 111, 3, 3},
	{"M50S+VH30", 172, 4, 3},
	{"M50S+VH40", 180, 4, 3},
	{"M50S+VJ30", 156, 4, 3},
	{"M50S+VJ40", 164, 4, 3},
	{"M50S+VJ60", 164, 4, 3},
	{"M50S+VK10", 111, 3, 3},
	{"M50S+VK20", 117, 3, 3},
	{"M50S+VK30", 123, 3, 3},
	{"M50S+VL10", 82, 2, 3},
	{"M50S+VL20", 86, 2, 3},
	{"M50S+VL30", 105, 3, 3},
	{"M50SVH20", 135, 3, 3},
	{"M50SVH30", 156, 4, 3},
	{"M50SVH40", 148, 4, 3},
	{"M50SVH50", 135, 3, 3},
	{"M50SVJ10", 111, 3, 3},
	{"M50SVJ20", 117, 3, 3},
	{"M50SVJ30", 123, 3, 3},
	{"M50SVJ40", 129, 3, 3},
	{"M50SVJ50", 135, 3, 3},
	{"M50SVK10", 78, 2, 3},
	{"M50SVK20", 111, 3, 3},
	{"M50SVK30", 117, 3, 3},
	{"M50SVK50", 105, 3, 3},
	{"M50SVK60", 111, 3, 3},
	{"M50SVK70", 123, 3, 3},
	{"M50SVK80", 86, 2, 3},
	{"M50SVL10", 74, 2, 3},
	{"M50SVL20", 78, 2, 3},
	{"M50SVL30", 82, 2, 3},
	{"M50VE30", 255, 5, 4},
	{"M50VG30", 156, 4, 3},
	{"M50VH10", 86, 2, 3},
	{"M50VH20", 111, 3, 3},
	{"M50VH30", 117, 3, 3},
	{"M50VH40", 84, 2, 3},
	{"M50VH50", 105, 3, 3},
	{"M50VH60", 84, 2, 3},
	{"M50VH70", 105, 3, 3},
	{"M50VH80", 111, 3, 3},
	{"M50VH90", 117, 3, 3},
	{"M50VJ10", 86, 2, 3},
	{"M50VJ20", 111, 3, 3},
	{"M50VJ30", 117, 3, 3},
	{"M50VJ40", 123, 3, 3},
	{"M50VJ60", 164, 4, 3},
	{"M50VK40", 111, 3, 3},
	{"M50VK50", 117, 3, 3},
	{"M51S+VL30", 111, 3, 3},
	{"M52S++VL10", 87, 3, 4},
	{"M52SVK30", 62, 2, 4},
	{"M53HVH10", 56, 2, 4},
	{"M53S++VK10", 198, 3, 4},
	{"M53S++VK20", 192, 3, 4},
	{"M53S++VK30", 240, 4, 4},
	{"M53S++VK50", 186, 3, 4},
	{"M53S++VL10", 128, 2, 4},
	{"M53S++VL30", 174, 3, 4},
	{"M53S+VJ30", 240, 4, 4},
	{"M53S+VJ40", 248, 4, 4},
	{"M53S+VJ50", 264, 4, 4},
	{"M53S+VK30", 168, 3, 4},
	{"M53SVH20", 198, 3, 4},
	{"M53SVH30", 204, 3, 4},
	{"M53SVJ30", 180, 3, 4},
	{"M53SVJ40", 192, 3, 4},
	{"M53SVK30", 128, 2, 4},
	{"M53VH30", 128, 2, 4},
	{"M53VH40", 174, 3, 4},
	{"M53VH50", 162, 3, 4},
	{"M53VK30", 100, 2, 4},
	{"M53VK60", 100, 2, 4},
	{"M54S++VK30", 96, 3, 4},
	{"M54S++VL30", 68, 2, 4},
	{"M54S++VL40", 90, 3, 4},
	{"M54S+VL30", 84, 3, 4},
	{"M54SVH30", 120, 4, 4},
	{"M54SVK30", 102, 3, 4},
	{"M56S++VK10", 160, 4, 4},
	{"M56S++VK30", 176, 4, 4},
	{"M56S++VK40", 132, 3, 4},
	{"M56S++VK50", 152, 4, 4},
	{"M56S+VJ30", 176, 4, 4},
	{"M56S+VK30", 108, 3, 4},
	{"M56S+VK40", 114, 3, 4},
	{"M56S+VK50", 120, 3, 4},
	{"M56SVH30", 152, 4, 4},
	{"M56SVJ30", 132, 3, 4},
	{"M56SVJ40", 152, 4, 4},
	{"M56VH30", 108, 3, 4},
	{"M59VH30", 132, 3, 4},
	{"M60S++VL10", 204, 4, 3},
	{"M60S++VL30", 225, 5, 3},
	{"M60S++VL40", 235, 5, 3},
	{"M60S++VL50", 245, 5, 3},
	{"M60S++VL70", 294, 6, 3},
	{"M60S++VM30", 117, 3, 3},
	{"M60S++VM40", 123, 3, 3},
	{"M60S++VM50", 129, 3, 3},
	{"M60S++VM60", 135, 3, 3},
	{"M60S++VM70", 141, 3, 3},
	{"M60S+VK30", 245, 5, 3},
	{"M60S+VK40", 215, 5, 4},
	{"M60S+VK50", 225, 5, 4},
	{"M60S+VK60", 294, 6, 3},
	{"M60S+VK70", 306, 6, 3},
	{"M60S+VL100", 176, 4, 3},
	{"M60S+VL10", 196, 4, 3},
	{"M60S+VL30", 225, 5, 3},
	{"M60S+VL40", 188, 4, 3},
	{"M60S+VL50", 180, 4, 3},
	{"M60S+VL60", 172, 4, 3},
	{"M60S+VL70", 225, 5, 3},
	{"M60S+VL80", 180, 4, 3},
	{"M60S+VL90", 184, 4, 3},
	{"M60S+VM20", 82, 2, 3},
	{"M60S+VM30", 86, 2, 3},
	{"M60S+VM40", 90, 2, 3},
	{"M60S+VM50", 98, 2, 3},
	{"M60SVK10", 215, 5, 3},
	{"M60SVK20", 235, 5, 3},
	{"M60SVK30", 245, 5, 3},
	{"M60SVK40", 225, 5, 3},
	{"M60SVK60", 188, 4, 3},
	{"M60SVK70", 196, 4, 3},
	{"M60SVK80", 225, 5, 3},
	{"M60SVK90", 192, 4, 3},
	{"M60SVL10", 147, 3, 3},
	{"M60SVL20", 164, 4, 3},
	{"M60SVL30", 172, 4, 3},
	{"M60SVL40", 180, 4, 3},
	{"M60SVL50", 188, 4, 3},
	{"M60SVL60", 196, 4, 3},
	{"M60SVL70", 141, 3, 3},
	{"M60SVL80", 135, 3, 3},
	{"M60SVM20", 78, 2, 3},
	{"M60SVM40", 86, 2, 3},
	{"M60VK10", 164, 4, 3},
	{"M60VK20", 172, 4, 3},
	{"M60VK30", 215, 5, 3},
	{"M60VK40", 180, 4, 3},
	{"M60VK6A", 172, 4, 3},
	{"M60VL10", 111, 3, 3},
	{"M60VL20", 117, 3, 3},
	{"M60VL30", 123, 3, 3},
	{"M60VL40", 129, 3, 3},
	{"M60VL50", 135, 3, 3},
	{"M61S+VL30", 225, 5, 3},
	{"M61SVK20", 225, 5, 3},
	{"M61SVK30", 235, 5, 3},
	{"M61SVL10", 164, 4, 3},
	{"M61SVL20", 172, 4, 3},
	{"M61SVL30", 180, 4, 3},
	{"M61SVL60", 180, 4, 3},
	{"M61SVL90", 225, 5, 3},
	{"M61SVM30", 117, 3, 3},
	{"M61VK10", 180, 4, 3},
	{"M61VK20", 184, 4, 3},
	{"M61VK30", 188, 4, 3},
	{"M61VK40", 192, 4, 3},
	{"M61VK60", 188, 4, 3},
	{"M61VL10", 135, 3, 3},
	{"M61VL30", 141, 3, 3},
	{"M61VL40", 144, 3, 3},
	{"M61VL50", 147, 3, 3},
	{"M61VL60", 150, 3, 3},
	{"M62S+VK30", 430, 5, 3},
	{"M63S++VL20", 380, 5, 4},
	{"M63S++VL40", 304, 4, 4},
	{"M63S++VL50", 340, 5, 4},
	{"M63S++VL60", 380, 5, 4},
	{"M63S++VM20", 198, 3, 4},
	{"M63S+VK30", 456, 6, 4},
	{"M63S+VL10", 304, 4, 4},
	{"M63S+VL20", 340, 5, 4},
	{"M63S+VL30", 370, 5, 4},
	{"M63S+VL50", 272, 4, 4},
	{"M63S+VL60", 304, 4, 4},
	{"M63S+VL70", 240, 4, 4},
	{"M63S+VL80", 256, 4, 4},
	{"M63S+VL90", 256, 4, 4},
	{"M63S+VM30", 136, 2, 4},
	{"M63S+VM40", 144, 2, 4},
	{"M63SVK10", 340, 5, 4},
	{"M63SVK20", 350, 5, 4},
	{"M63SVK30", 370, 5, 4},
	{"M63SVK40", 288, 4, 4},
	{"M63SVK50", 300, 5, 4},
	{"M63SVK60", 350, 5, 4},
	{"M63SVK70", 340, 5, 4},
	{"M63SVK80", 288, 4, 4},
	{"M63SVK90", 304, 4, 4},
	{"M63SVL10", 228, 3, 4},
	{"M63SVL20", 216, 3, 4},
	{"M63SVL30", 272, 4, 4},
	{"M63SVL50", 288, 4, 4},
	{"M63SVL60", 288, 4, 4},
	{"M63SVL70", 228, 3, 4},
	{"M63SVM30", 132, 2, 4},
	{"M63VK10", 256, 4, 4},
	{"M63VK20", 264, 4, 4},
	{"M63VK30", 272, 4, 4},
	{"M63VL10", 174, 3, 4},
	{"M63VL20", 204, 3, 4},
	{"M63VL30", 216, 3, 4},
	{"M63VL40", 180, 3, 4},
	{"M63VL60", 216, 3, 4},
	{"M63VL70", 174, 3, 4},
	{"M64S++VM30", 96, 3, 4},
	{"M64SVL10", 114, 3, 4},
	{"M64SVL20", 120, 4, 4},
	{"M64SVL30", 152, 4, 4},
	{"M64VL20", 96, 3, 4},
	{"M64VL30", 114, 3, 4},
	{"M64VL40", 120, 4, 4},
	{"M65S+VK30", 456, 6, 4},
	{"M65SVK20", 350, 5, 4},
	{"M65SVL60", 288, 4, 4},
	{"M66S++VL20", 368, 4, 3},
	{"M66S++VL40", 288, 3, 3},
	{"M66S++VL50", 240, 5, 4},
	{"M66S++VL60", 250, 5, 4},
	{"M66S++VM30", 138, 3, 4},
	{"M66S+VK30", 440, 5, 3},
	{"M66S+VL10", 220, 5, 4},
	{"M66S+VL20", 230, 5, 4},
	{"M66S+VL30", 240, 5, 4},
	{"M66S+VL40", 250, 5, 4},
	{"M66S+VL50", 200, 4, 4},
	{"M66S+VL60", 200, 4, 4},
	{"M66S+VL70", 230, 5, 4},
	{"M66SVK20", 368, 4, 3},
	{"M66SVK30", 384, 4, 3},
	{"M66SVK40", 240, 5, 4},
	{"M66SVK50", 250, 5, 4},
	{"M66SVK60", 250, 5, 4},
	{"M66SVK70", 210, 5, 4},
	{"M66SVK80", 220, 5, 4},
	{"M66SVL10", 168, 4, 4},
	{"M66SVL20", 176, 4, 4},
	{"M66SVL30", 192, 4, 4},
	{"M66SVL40", 200, 4, 4},
	{"M66SVL50", 210, 5, 4},
	{"M66SVL80", 160, 4, 4},
	{"M66VK20", 184, 4, 4},
	{"M66VK30", 192, 4, 4},
	{"M66VK60", 176, 4, 4},
	{"M66VL20", 160, 4, 4},
	{"M66VL30", 168, 4, 4},
	{"M67SVK30", 440, 5, 3},
	{"M69S++VM30", 228, 3, 4},
	{"M69VK30", 228, 3, 4},
	{"M70SVM30", 204, 4, 3},
	{"M70VL30", 255, 5, 3},
	{"M70VM30", 147, 3, 3},
	{"M73SVM30", 304, 4, 4},
	{"M73VL30", 380, 5, 4},
	{"M73VM30", 228, 3, 4},
	{"M76SVM30", 240, 4, 3},
	{"M76VL30", 384, 4, 3},
	{"M76VM30", 176, 4, 3},
}
