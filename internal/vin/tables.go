package vin

// transliterations maps the 23 letters that may appear in a VIN (I, O and
// Q are never used) to their ISO 3779 numeric values for checksum
// computation. Digits map to themselves and are handled separately.
var transliterations = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

// weights holds the positional multipliers of the weighted mod-11 checksum.
// The check-digit slot (position 9) carries weight 0 so one loop can
// consume every position uniformly.
var weights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// manufacturers maps WMI prefixes to manufacturer names. Keys are 3
// characters except where a manufacturer registered a 2-character prefix
// and delegates the third position to vehicle-class distinctions.
var manufacturers = map[string]string{
	"1C":  "Chrysler USA",
	"1F":  "Ford USA",
	"1FU": "Freightliner",
	"1G":  "General Motors USA",
	"1G1": "Chevrolet USA",
	"1GC": "Chevrolet Truck USA",
	"1GM": "Pontiac USA",
	"1HG": "Honda USA",
	"1HT": "International Truck USA",
	"1J4": "Jeep",
	"1L":  "Lincoln USA",
	"1M":  "Mercury USA",
	"1N":  "Nissan USA",
	"1VW": "Volkswagen USA",
	"1YV": "Mazda USA",
	"2F":  "Ford Canada",
	"2G":  "General Motors Canada",
	"2HG": "Honda Canada",
	"2HK": "Honda Canada",
	"2T":  "Toyota Canada",
	"3FA": "Ford Mexico",
	"3N1": "Nissan Mexico",
	"3VW": "Volkswagen Mexico",
	"4F":  "Mazda USA",
	"4S":  "Subaru USA",
	"4T":  "Toyota USA",
	"5FN": "Honda USA",
	"5N1": "Nissan USA",
	"5YJ": "Tesla",
	"6F":  "Ford Australia",
	"6G1": "Holden Australia",
	"6T1": "Toyota Australia",
	"8AG": "Chevrolet Argentina",
	"93H": "Honda Brazil",
	"9BW": "Volkswagen Brazil",
	"JA3": "Mitsubishi Japan",
	"JAC": "Isuzu Japan",
	"JF":  "Subaru Japan",
	"JH4": "Acura Japan",
	"JHM": "Honda Japan",
	"JM1": "Mazda Japan",
	"JN":  "Nissan Japan",
	"JS":  "Suzuki Japan",
	"JT":  "Toyota Japan",
	"KL":  "GM Korea",
	"KM8": "Hyundai Korea",
	"KMH": "Hyundai Korea",
	"KN":  "Kia Korea",
	"SAJ": "Jaguar",
	"SAL": "Land Rover",
	"SCC": "Lotus",
	"SCF": "Aston Martin",
	"TRU": "Audi Hungary",
	"VF1": "Renault France",
	"VF3": "Peugeot France",
	"VF7": "Citroen France",
	"W0L": "Opel",
	"WAU": "Audi Germany",
	"WBA": "BMW Germany",
	"WBS": "BMW M Germany",
	"WDB": "Mercedes-Benz Germany",
	"WDD": "Mercedes-Benz Germany",
	"WMW": "MINI Germany",
	"WP0": "Porsche Germany",
	"WVW": "Volkswagen Germany",
	"YS3": "Saab Sweden",
	"YV1": "Volvo Sweden",
	"ZAM": "Maserati Italy",
	"ZAR": "Alfa Romeo Italy",
	"ZFA": "Fiat Italy",
	"ZFF": "Ferrari Italy",
}

// modelYears maps the model-year code (position 10) onto the 2001-2030
// cycle: digits 1-9 cover 2001-2009 and the valid letters cover 2010-2030.
// The single character repeats every 30 years, so any table is a
// best-effort convention; codes outside it resolve to FallbackYear.
var modelYears = map[byte]int{
	'1': 2001, '2': 2002, '3': 2003, '4': 2004, '5': 2005,
	'6': 2006, '7': 2007, '8': 2008, '9': 2009,
	'A': 2010, 'B': 2011, 'C': 2012, 'D': 2013, 'E': 2014,
	'F': 2015, 'G': 2016, 'H': 2017, 'J': 2018, 'K': 2019,
	'L': 2020, 'M': 2021, 'N': 2022, 'P': 2023, 'R': 2024,
	'S': 2025, 'T': 2026, 'V': 2027, 'W': 2028, 'X': 2029,
	'Y': 2030,
}

// FallbackYear is returned by Year for model-year codes with no table
// entry ('0' and the letters I, O, Q, U, Z have no slot on the cycle).
const FallbackYear = 2000

// fuelTypes maps fuel names as reported by the extended-info source
// (vPIC FuelTypePrimary vocabulary) to their numeric codes.
var fuelTypes = map[string]int{
	"Diesel":                      1,
	"Electric":                    2,
	"Flexible Fuel Vehicle (FFV)": 3,
	"Gasoline":                    4,
	"Natural Gas":                 5,
	"Compressed Natural Gas (CNG)": 6,
	"Liquefied Natural Gas (LNG)":  7,
	"Neat Ethanol (E100)":          8,
	"Neat Methanol (M100)":         9,
	"Ethanol (E85)":                10,
	"Methanol (M85)":               11,
	"Liquefied Petroleum Gas (propane or LPG)": 12,
	"Fuel Cell": 15,
	"Hydrogen":  16,
}
