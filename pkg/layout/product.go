/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package layout

import (
	"fmt"
)

// ProductType is the aircraft model code carried in the flight summary.
type ProductType uint8

const (
	ProductNone                  ProductType = 0
	ProductInspire1              ProductType = 1
	ProductPhantom3Standard      ProductType = 2
	ProductPhantom3Advanced      ProductType = 3
	ProductPhantom3Pro           ProductType = 4
	ProductOSMO                  ProductType = 5
	ProductMatrice100            ProductType = 6
	ProductPhantom4              ProductType = 7
	ProductLB2                   ProductType = 8
	ProductInspire1Pro           ProductType = 9
	ProductA3                    ProductType = 10
	ProductMatrice600            ProductType = 11
	ProductPhantom34K            ProductType = 12
	ProductMavicPro              ProductType = 13
	ProductZenmuseXT             ProductType = 14
	ProductInspire1RAW           ProductType = 15
	ProductA2                    ProductType = 16
	ProductInspire2              ProductType = 17
	ProductOSMOPro               ProductType = 18
	ProductOSMORaw               ProductType = 19
	ProductOSMOPlus              ProductType = 20
	ProductMavic                 ProductType = 21
	ProductOSMOMobile            ProductType = 22
	ProductOrangeCV600           ProductType = 23
	ProductPhantom4Pro           ProductType = 24
	ProductN3FC                  ProductType = 25
	ProductSpark                 ProductType = 26
	ProductMatrice600Pro         ProductType = 27
	ProductPhantom4Advanced      ProductType = 28
	ProductPhantom3SE            ProductType = 29
	ProductAG405                 ProductType = 30
	ProductMatrice200            ProductType = 31
	ProductMatrice210            ProductType = 33
	ProductMatrice210RTK         ProductType = 34
	ProductMavicAir              ProductType = 38
	ProductMavic2                ProductType = 42
	ProductPhantom4ProV2         ProductType = 44
	ProductPhantom4RTK           ProductType = 46
	ProductPhantom4Multispectral ProductType = 57
	ProductMavic2Enterprise      ProductType = 58
	ProductMavicMini             ProductType = 59
	ProductMatrice200V2          ProductType = 60
	ProductMatrice210V2          ProductType = 61
	ProductMatrice210RTKV2       ProductType = 62
	ProductMavicAir2             ProductType = 67
	ProductMatrice300RTK         ProductType = 70
	ProductFPV                   ProductType = 73
	ProductMavicAir2S            ProductType = 75
	ProductMini2                 ProductType = 76
	ProductMavic3                ProductType = 77
	ProductMiniSE                ProductType = 96
	ProductMini3Pro              ProductType = 103
	ProductMavic3Pro             ProductType = 111
	ProductMini2SE               ProductType = 113
	ProductMatrice30             ProductType = 116
	ProductMavic3Enterprise      ProductType = 118
	ProductAvata                 ProductType = 121
	ProductMini4Pro              ProductType = 126
	ProductAvata2                ProductType = 152
	ProductMatrice350RTK         ProductType = 170
)

var productNames = map[ProductType]string{
	ProductNone:                  "None",
	ProductInspire1:              "Inspire1",
	ProductPhantom3Standard:      "Phantom3Standard",
	ProductPhantom3Advanced:      "Phantom3Advanced",
	ProductPhantom3Pro:           "Phantom3Pro",
	ProductOSMO:                  "OSMO",
	ProductMatrice100:            "Matrice100",
	ProductPhantom4:              "Phantom4",
	ProductLB2:                   "LB2",
	ProductInspire1Pro:           "Inspire1Pro",
	ProductA3:                    "A3",
	ProductMatrice600:            "Matrice600",
	ProductPhantom34K:            "Phantom34K",
	ProductMavicPro:              "MavicPro",
	ProductZenmuseXT:             "ZenmuseXT",
	ProductInspire1RAW:           "Inspire1RAW",
	ProductA2:                    "A2",
	ProductInspire2:              "Inspire2",
	ProductOSMOPro:               "OSMOPro",
	ProductOSMORaw:               "OSMORaw",
	ProductOSMOPlus:              "OSMOPlus",
	ProductMavic:                 "Mavic",
	ProductOSMOMobile:            "OSMOMobile",
	ProductOrangeCV600:           "OrangeCV600",
	ProductPhantom4Pro:           "Phantom4Pro",
	ProductN3FC:                  "N3FC",
	ProductSpark:                 "Spark",
	ProductMatrice600Pro:         "Matrice600Pro",
	ProductPhantom4Advanced:      "Phantom4Advanced",
	ProductPhantom3SE:            "Phantom3SE",
	ProductAG405:                 "AG405",
	ProductMatrice200:            "Matrice200",
	ProductMatrice210:            "Matrice210",
	ProductMatrice210RTK:         "Matrice210RTK",
	ProductMavicAir:              "MavicAir",
	ProductMavic2:                "Mavic2",
	ProductPhantom4ProV2:         "Phantom4ProV2",
	ProductPhantom4RTK:           "Phantom4RTK",
	ProductPhantom4Multispectral: "Phantom4Multispectral",
	ProductMavic2Enterprise:      "Mavic2Enterprise",
	ProductMavicMini:             "MavicMini",
	ProductMatrice200V2:          "Matrice200V2",
	ProductMatrice210V2:          "Matrice210V2",
	ProductMatrice210RTKV2:       "Matrice210RTKV2",
	ProductMavicAir2:             "MavicAir2",
	ProductMatrice300RTK:         "Matrice300RTK",
	ProductFPV:                   "FPV",
	ProductMavicAir2S:            "MavicAir2S",
	ProductMini2:                 "Mini2",
	ProductMavic3:                "Mavic3",
	ProductMiniSE:                "MiniSE",
	ProductMini3Pro:              "Mini3Pro",
	ProductMavic3Pro:             "Mavic3Pro",
	ProductMini2SE:               "Mini2SE",
	ProductMatrice30:             "Matrice30",
	ProductMavic3Enterprise:      "Mavic3Enterprise",
	ProductAvata:                 "Avata",
	ProductMini4Pro:              "Mini4Pro",
	ProductAvata2:                "Avata2",
	ProductMatrice350RTK:         "Matrice350RTK",
}

func (p ProductType) String() string {
	if name, ok := productNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(p))
}

// BatteryCellNum returns the number of cells in one battery for the model.
func (p ProductType) BatteryCellNum() int {
	switch p {
	case ProductInspire1, ProductInspire1Pro, ProductInspire1RAW, ProductInspire2,
		ProductMatrice100, ProductMatrice600, ProductMatrice600Pro,
		ProductMatrice200, ProductMatrice210, ProductMatrice210RTK,
		ProductMatrice200V2, ProductMatrice210V2, ProductMatrice210RTKV2,
		ProductMatrice30, ProductFPV:
		return 6
	case ProductMatrice300RTK, ProductMatrice350RTK:
		return 12
	case ProductMavicPro, ProductMavic, ProductSpark, ProductMavicAir,
		ProductMavicAir2, ProductMavicAir2S:
		return 3
	case ProductMavicMini, ProductMini2, ProductMiniSE, ProductMini3Pro,
		ProductMini2SE, ProductMini4Pro:
		return 2
	case ProductAvata:
		return 5
	default:
		return 4
	}
}

// BatteryNum returns how many batteries the model flies with.
func (p ProductType) BatteryNum() int {
	switch p {
	case ProductInspire1, ProductInspire1Pro, ProductInspire1RAW, ProductInspire2,
		ProductMatrice100, ProductMatrice200, ProductMatrice210, ProductMatrice210RTK,
		ProductMatrice200V2, ProductMatrice210V2, ProductMatrice210RTKV2,
		ProductMatrice300RTK, ProductMatrice350RTK, ProductMatrice30:
		return 2
	case ProductMatrice600, ProductMatrice600Pro:
		return 6
	default:
		return 1
	}
}

// Platform is the app platform code carried in the flight summary.
type Platform uint8

const (
	PlatformIOS     Platform = 1
	PlatformAndroid Platform = 2
	PlatformFly     Platform = 6
	PlatformWindows Platform = 10
	PlatformMac     Platform = 11
	PlatformLinux   Platform = 12
)

func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "iOS"
	case PlatformAndroid:
		return "Android"
	case PlatformFly:
		return "DJIFly"
	case PlatformWindows:
		return "Windows"
	case PlatformMac:
		return "Mac"
	case PlatformLinux:
		return "Linux"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(p))
}
