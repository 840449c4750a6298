package market

// majorCityStates maps well-known city names (lowercased) to their state,
// used before falling back to the reference dataset when an uploaded entry
// carries no state. Ambiguous names (Springfield, Columbus, Aurora...) keep
// a single canonical state.
var majorCityStates = map[string]string{
	"houston": "TX", "dallas": "TX", "san antonio": "TX", "austin": "TX", "fort worth": "TX",
	"phoenix": "AZ", "tucson": "AZ", "mesa": "AZ", "chandler": "AZ",
	"los angeles": "CA", "san diego": "CA", "san jose": "CA", "san francisco": "CA",
	"fresno": "CA", "sacramento": "CA", "long beach": "CA", "oakland": "CA",
	"chicago": "IL", "rockford": "IL", "joliet": "IL",
	"philadelphia": "PA", "pittsburgh": "PA", "allentown": "PA", "erie": "PA",
	"new york": "NY", "buffalo": "NY", "yonkers": "NY",
	"miami": "FL", "tampa": "FL", "orlando": "FL", "st. petersburg": "FL",
	"atlanta": "GA", "augusta": "GA", "savannah": "GA",
	"nashville": "TN", "memphis": "TN", "knoxville": "TN", "chattanooga": "TN",
	"denver": "CO", "colorado springs": "CO", "aurora": "CO", "fort collins": "CO",
	"seattle": "WA", "spokane": "WA", "tacoma": "WA", "vancouver": "WA",
	"portland": "OR", "salem": "OR", "eugene": "OR", "gresham": "OR",
	"las vegas": "NV", "henderson": "NV", "reno": "NV", "north las vegas": "NV",
	"boston": "MA", "worcester": "MA", "cambridge": "MA",
	"detroit": "MI", "grand rapids": "MI", "warren": "MI", "sterling heights": "MI",
	"minneapolis": "MN", "saint paul": "MN", "rochester": "MN", "duluth": "MN",
	"saint louis": "MO", "springfield": "MO", "independence": "MO",
	"cleveland": "OH", "cincinnati": "OH", "toledo": "OH", "akron": "OH",
	"columbus": "OH", "dayton": "OH", "parma": "OH", "canton": "OH",
	"indianapolis": "IN", "fort wayne": "IN", "evansville": "IN", "south bend": "IN",
	"milwaukee": "WI", "madison": "WI", "green bay": "WI", "kenosha": "WI",
	"baltimore": "MD", "frederick": "MD", "rockville": "MD", "gaithersburg": "MD",
	"charlotte": "NC", "raleigh": "NC", "greensboro": "NC", "durham": "NC",
	"virginia beach": "VA", "norfolk": "VA", "chesapeake": "VA", "richmond": "VA",
	"salt lake city": "UT", "west valley city": "UT", "provo": "UT", "west jordan": "UT",
	"oklahoma city": "OK", "tulsa": "OK", "norman": "OK", "broken arrow": "OK",
	"louisville": "KY", "lexington": "KY", "bowling green": "KY", "owensboro": "KY",
	"new orleans": "LA", "baton rouge": "LA", "shreveport": "LA", "lafayette": "LA",
	"albuquerque": "NM", "las cruces": "NM", "rio rancho": "NM", "santa fe": "NM",
	"omaha": "NE", "lincoln": "NE", "bellevue": "NE", "grand island": "NE",
	"wichita": "KS", "overland park": "KS", "kansas city": "KS", "topeka": "KS",
	"des moines": "IA", "cedar rapids": "IA", "davenport": "IA", "sioux city": "IA",
	"little rock": "AR", "fort smith": "AR", "fayetteville": "AR",
	"jackson": "MS", "gulfport": "MS", "southaven": "MS", "hattiesburg": "MS",
	"birmingham": "AL", "montgomery": "AL", "mobile": "AL", "huntsville": "AL",
	"anchorage": "AK", "fairbanks": "AK", "juneau": "AK",
	"honolulu": "HI", "pearl city": "HI", "hilo": "HI",
	"boise": "ID", "nampa": "ID", "meridian": "ID", "idaho falls": "ID",
	"billings": "MT", "missoula": "MT", "great falls": "MT", "bozeman": "MT",
	"fargo": "ND", "bismarck": "ND", "grand forks": "ND", "minot": "ND",
	"sioux falls": "SD", "rapid city": "SD", "aberdeen": "SD", "brookings": "SD",
	"cheyenne": "WY", "casper": "WY", "laramie": "WY", "gillette": "WY",
	"burlington": "VT", "essex": "VT", "south burlington": "VT", "colchester": "VT",
	"concord": "NH", "manchester": "NH", "nashua": "NH", "derry": "NH",
	"providence": "RI", "warwick": "RI", "cranston": "RI", "pawtucket": "RI",
	"hartford": "CT", "bridgeport": "CT", "new haven": "CT", "stamford": "CT",
	"dover": "DE", "wilmington": "DE",
	"annapolis": "MD", "bowie": "MD", "hagerstown": "MD",
	"huntington": "WV", "parkersburg": "WV", "morgantown": "WV",
	"columbia": "SC", "charleston": "SC", "north charleston": "SC", "mount pleasant": "SC",
	"tallahassee": "FL", "fort lauderdale": "FL", "port st. lucie": "FL", "cape coral": "FL",
	"washington": "DC",
}
