package search

// Location is one search center: a geocodable query plus a radius in meters.
type Location struct {
	Query  string
	Radius int
}

// Locations builds a search grid from city names using the standard radius.
func Locations(cities []string, radius int) []Location {
	locs := make([]Location, 0, len(cities))
	for _, c := range cities {
		locs = append(locs, Location{Query: c, Radius: radius})
	}
	return locs
}

// DefaultLocations returns the nationwide search grid: major cities of every
// state, sized so overlapping radii cover the whole country. Alaska's two
// biggest centers get a wider radius.
func DefaultLocations() []Location {
	return []Location{
		// Alabama
		{"Birmingham, AL", 200000}, {"Montgomery, AL", 200000}, {"Mobile, AL", 200000}, {"Huntsville, AL", 200000},
		// Alaska
		{"Anchorage, AK", 300000}, {"Fairbanks, AK", 300000}, {"Juneau, AK", 200000},
		// Arizona
		{"Phoenix, AZ", 200000}, {"Tucson, AZ", 200000}, {"Mesa, AZ", 200000}, {"Chandler, AZ", 200000},
		// Arkansas
		{"Little Rock, AR", 200000}, {"Fort Smith, AR", 200000}, {"Fayetteville, AR", 200000},
		// California
		{"Los Angeles, CA", 200000}, {"San Diego, CA", 200000}, {"San Jose, CA", 200000}, {"San Francisco, CA", 200000},
		{"Fresno, CA", 200000}, {"Sacramento, CA", 200000}, {"Long Beach, CA", 200000}, {"Oakland, CA", 200000},
		{"Bakersfield, CA", 200000}, {"Anaheim, CA", 200000}, {"Santa Ana, CA", 200000}, {"Riverside, CA", 200000},
		// Colorado
		{"Denver, CO", 200000}, {"Colorado Springs, CO", 200000}, {"Aurora, CO", 200000}, {"Fort Collins, CO", 200000},
		// Connecticut
		{"Bridgeport, CT", 200000}, {"New Haven, CT", 200000}, {"Hartford, CT", 200000}, {"Stamford, CT", 200000},
		// Delaware
		{"Wilmington, DE", 200000}, {"Dover, DE", 200000},
		// Florida
		{"Jacksonville, FL", 200000}, {"Miami, FL", 200000}, {"Tampa, FL", 200000}, {"Orlando, FL", 200000},
		{"St. Petersburg, FL", 200000}, {"Hialeah, FL", 200000}, {"Tallahassee, FL", 200000}, {"Fort Lauderdale, FL", 200000},
		{"Port St. Lucie, FL", 200000}, {"Cape Coral, FL", 200000}, {"Pembroke Pines, FL", 200000}, {"Hollywood, FL", 200000},
		// Georgia
		{"Atlanta, GA", 200000}, {"Augusta, GA", 200000}, {"Columbus, GA", 200000}, {"Savannah, GA", 200000},
		{"Athens, GA", 200000}, {"Sandy Springs, GA", 200000}, {"Roswell, GA", 200000}, {"Macon, GA", 200000},
		// Hawaii
		{"Honolulu, HI", 200000}, {"Pearl City, HI", 200000}, {"Hilo, HI", 200000},
		// Idaho
		{"Boise, ID", 200000}, {"Nampa, ID", 200000}, {"Meridian, ID", 200000}, {"Idaho Falls, ID", 200000},
		// Illinois
		{"Chicago, IL", 200000}, {"Aurora, IL", 200000}, {"Rockford, IL", 200000}, {"Joliet, IL", 200000},
		{"Naperville, IL", 200000}, {"Springfield, IL", 200000}, {"Peoria, IL", 200000}, {"Elgin, IL", 200000},
		// Indiana
		{"Indianapolis, IN", 200000}, {"Fort Wayne, IN", 200000}, {"Evansville, IN", 200000}, {"South Bend, IN", 200000},
		{"Carmel, IN", 200000}, {"Fishers, IN", 200000}, {"Bloomington, IN", 200000}, {"Hammond, IN", 200000},
		// Iowa
		{"Des Moines, IA", 200000}, {"Cedar Rapids, IA", 200000}, {"Davenport, IA", 200000}, {"Sioux City, IA", 200000},
		// Kansas
		{"Wichita, KS", 200000}, {"Overland Park, KS", 200000}, {"Kansas City, KS", 200000}, {"Topeka, KS", 200000},
		// Kentucky
		{"Louisville, KY", 200000}, {"Lexington, KY", 200000}, {"Bowling Green, KY", 200000}, {"Owensboro, KY", 200000},
		// Louisiana
		{"New Orleans, LA", 200000}, {"Baton Rouge, LA", 200000}, {"Shreveport, LA", 200000}, {"Lafayette, LA", 200000},
		{"Lake Charles, LA", 200000}, {"Kenner, LA", 200000}, {"Bossier City, LA", 200000}, {"Monroe, LA", 200000},
		// Maine
		{"Portland, ME", 200000}, {"Lewiston, ME", 200000}, {"Bangor, ME", 200000}, {"South Portland, ME", 200000},
		// Maryland
		{"Baltimore, MD", 200000}, {"Frederick, MD", 200000}, {"Rockville, MD", 200000}, {"Gaithersburg, MD", 200000},
		{"Bowie, MD", 200000}, {"Hagerstown, MD", 200000}, {"Annapolis, MD", 200000},
		// Massachusetts
		{"Boston, MA", 200000}, {"Worcester, MA", 200000}, {"Springfield, MA", 200000}, {"Cambridge, MA", 200000},
		{"Lowell, MA", 200000}, {"Brockton, MA", 200000}, {"New Bedford, MA", 200000}, {"Quincy, MA", 200000},
		// Michigan
		{"Detroit, MI", 200000}, {"Grand Rapids, MI", 200000}, {"Warren, MI", 200000}, {"Sterling Heights, MI", 200000},
		{"Lansing, MI", 200000}, {"Ann Arbor, MI", 200000}, {"Flint, MI", 200000}, {"Dearborn, MI", 200000},
		// Minnesota
		{"Minneapolis, MN", 200000}, {"Saint Paul, MN", 200000}, {"Rochester, MN", 200000}, {"Duluth, MN", 200000},
		{"Bloomington, MN", 200000}, {"Brooklyn Park, MN", 200000}, {"Plymouth, MN", 200000}, {"St. Cloud, MN", 200000},
		// Mississippi
		{"Jackson, MS", 200000}, {"Gulfport, MS", 200000}, {"Southaven, MS", 200000}, {"Hattiesburg, MS", 200000},
		// Missouri
		{"Kansas City, MO", 200000}, {"Saint Louis, MO", 200000}, {"Springfield, MO", 200000}, {"Independence, MO", 200000},
		{"Columbia, MO", 200000}, {"Lee's Summit, MO", 200000}, {"O'Fallon, MO", 200000}, {"St. Joseph, MO", 200000},
		// Montana
		{"Billings, MT", 200000}, {"Missoula, MT", 200000}, {"Great Falls, MT", 200000}, {"Bozeman, MT", 200000},
		// Nebraska
		{"Omaha, NE", 200000}, {"Lincoln, NE", 200000}, {"Bellevue, NE", 200000}, {"Grand Island, NE", 200000},
		// Nevada
		{"Las Vegas, NV", 200000}, {"Henderson, NV", 200000}, {"Reno, NV", 200000}, {"North Las Vegas, NV", 200000},
		{"Sparks, NV", 200000}, {"Carson City, NV", 200000},
		// New Hampshire
		{"Manchester, NH", 200000}, {"Nashua, NH", 200000}, {"Concord, NH", 200000}, {"Derry, NH", 200000},
		// New Jersey
		{"Newark, NJ", 200000}, {"Jersey City, NJ", 200000}, {"Paterson, NJ", 200000}, {"Elizabeth, NJ", 200000},
		{"Edison, NJ", 200000}, {"Woodbridge, NJ", 200000}, {"Lakewood, NJ", 200000}, {"Toms River, NJ", 200000},
		// New Mexico
		{"Albuquerque, NM", 200000}, {"Las Cruces, NM", 200000}, {"Rio Rancho, NM", 200000}, {"Santa Fe, NM", 200000},
		// New York
		{"New York, NY", 200000}, {"Buffalo, NY", 200000}, {"Rochester, NY", 200000}, {"Yonkers, NY", 200000},
		{"Syracuse, NY", 200000}, {"Albany, NY", 200000}, {"New Rochelle, NY", 200000}, {"Mount Vernon, NY", 200000},
		{"Schenectady, NY", 200000}, {"Utica, NY", 200000}, {"White Plains, NY", 200000}, {"Hempstead, NY", 200000},
		// North Carolina
		{"Charlotte, NC", 200000}, {"Raleigh, NC", 200000}, {"Greensboro, NC", 200000}, {"Durham, NC", 200000},
		{"Winston-Salem, NC", 200000}, {"Fayetteville, NC", 200000}, {"Cary, NC", 200000}, {"Wilmington, NC", 200000},
		// North Dakota
		{"Fargo, ND", 200000}, {"Bismarck, ND", 200000}, {"Grand Forks, ND", 200000}, {"Minot, ND", 200000},
		// Ohio
		{"Columbus, OH", 200000}, {"Cleveland, OH", 200000}, {"Cincinnati, OH", 200000}, {"Toledo, OH", 200000},
		{"Akron, OH", 200000}, {"Dayton, OH", 200000}, {"Parma, OH", 200000}, {"Canton, OH", 200000},
		{"Youngstown, OH", 200000}, {"Lorain, OH", 200000}, {"Hamilton, OH", 200000}, {"Springfield, OH", 200000},
		// Oklahoma
		{"Oklahoma City, OK", 200000}, {"Tulsa, OK", 200000}, {"Norman, OK", 200000}, {"Broken Arrow, OK", 200000},
		// Oregon
		{"Portland, OR", 200000}, {"Salem, OR", 200000}, {"Eugene, OR", 200000}, {"Gresham, OR", 200000},
		{"Hillsboro, OR", 200000}, {"Bend, OR", 200000}, {"Medford, OR", 200000}, {"Springfield, OR", 200000},
		// Pennsylvania
		{"Philadelphia, PA", 200000}, {"Pittsburgh, PA", 200000}, {"Allentown, PA", 200000}, {"Erie, PA", 200000},
		{"Reading, PA", 200000}, {"Scranton, PA", 200000}, {"Bethlehem, PA", 200000}, {"Lancaster, PA", 200000},
		{"Harrisburg, PA", 200000}, {"Altoona, PA", 200000}, {"York, PA", 200000}, {"State College, PA", 200000},
		// Rhode Island
		{"Providence, RI", 200000}, {"Warwick, RI", 200000}, {"Cranston, RI", 200000}, {"Pawtucket, RI", 200000},
		// South Carolina
		{"Columbia, SC", 200000}, {"Charleston, SC", 200000}, {"North Charleston, SC", 200000}, {"Mount Pleasant, SC", 200000},
		{"Rock Hill, SC", 200000}, {"Greenville, SC", 200000}, {"Summerville, SC", 200000}, {"Sumter, SC", 200000},
		// South Dakota
		{"Sioux Falls, SD", 200000}, {"Rapid City, SD", 200000}, {"Aberdeen, SD", 200000}, {"Brookings, SD", 200000},
		// Tennessee
		{"Nashville, TN", 200000}, {"Memphis, TN", 200000}, {"Knoxville, TN", 200000}, {"Chattanooga, TN", 200000},
		{"Clarksville, TN", 200000}, {"Murfreesboro, TN", 200000}, {"Franklin, TN", 200000}, {"Jackson, TN", 200000},
		// Texas
		{"Houston, TX", 200000}, {"San Antonio, TX", 200000}, {"Dallas, TX", 200000}, {"Austin, TX", 200000},
		{"Fort Worth, TX", 200000}, {"El Paso, TX", 200000}, {"Arlington, TX", 200000}, {"Corpus Christi, TX", 200000},
		{"Plano, TX", 200000}, {"Lubbock, TX", 200000}, {"Laredo, TX", 200000}, {"Garland, TX", 200000},
		{"Irving, TX", 200000}, {"Amarillo, TX", 200000}, {"Grand Prairie, TX", 200000}, {"Brownsville, TX", 200000},
		{"Pasadena, TX", 200000}, {"Mesquite, TX", 200000}, {"McKinney, TX", 200000}, {"McAllen, TX", 200000},
		// Utah
		{"Salt Lake City, UT", 200000}, {"West Valley City, UT", 200000}, {"Provo, UT", 200000}, {"West Jordan, UT", 200000},
		{"Orem, UT", 200000}, {"Sandy, UT", 200000}, {"Ogden, UT", 200000}, {"St. George, UT", 200000},
		// Vermont
		{"Burlington, VT", 200000}, {"Essex, VT", 200000}, {"South Burlington, VT", 200000}, {"Colchester, VT", 200000},
		// Virginia
		{"Virginia Beach, VA", 200000}, {"Norfolk, VA", 200000}, {"Chesapeake, VA", 200000}, {"Richmond, VA", 200000},
		{"Newport News, VA", 200000}, {"Alexandria, VA", 200000}, {"Hampton, VA", 200000}, {"Portsmouth, VA", 200000},
		{"Suffolk, VA", 200000}, {"Roanoke, VA", 200000}, {"Lynchburg, VA", 200000}, {"Harrisonburg, VA", 200000},
		// Washington
		{"Seattle, WA", 200000}, {"Spokane, WA", 200000}, {"Tacoma, WA", 200000}, {"Vancouver, WA", 200000},
		{"Bellevue, WA", 200000}, {"Everett, WA", 200000}, {"Kent, WA", 200000}, {"Renton, WA", 200000},
		{"Yakima, WA", 200000}, {"Federal Way, WA", 200000}, {"Spokane Valley, WA", 200000}, {"Bellingham, WA", 200000},
		// West Virginia
		{"Charleston, WV", 200000}, {"Huntington, WV", 200000}, {"Parkersburg, WV", 200000}, {"Morgantown, WV", 200000},
		// Wisconsin
		{"Milwaukee, WI", 200000}, {"Madison, WI", 200000}, {"Green Bay, WI", 200000}, {"Kenosha, WI", 200000},
		{"Racine, WI", 200000}, {"Appleton, WI", 200000}, {"Waukesha, WI", 200000}, {"Oshkosh, WI", 200000},
		// Wyoming
		{"Cheyenne, WY", 200000}, {"Casper, WY", 200000}, {"Laramie, WY", 200000}, {"Gillette, WY", 200000},
		// Washington DC
		{"Washington, DC", 200000},
	}
}
