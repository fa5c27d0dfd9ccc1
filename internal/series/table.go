package series

import "coinvalue/internal/coin"

// Denomination codes used by Table.
const (
	HalfCent     = "0.5"
	Cent         = "1"
	TwoCent      = "2"
	ThreeCent    = "3"
	Nickel       = "5"
	Dime         = "10"
	TwentyCent   = "20"
	Quarter      = "25"
	Half         = "50"
	SilverDollar = "S$1"
	GoldDollar   = "G$1"
	QuarterEagle = "250"
	ThreeDollar  = "300"
	Stella       = "400"
	HalfEagle    = "500"
	Eagle        = "1000"
	DoubleEagle  = "2000"
	ProofSet     = "Proof Set"
)

// Table lists every priced series. Series without a denomination code are
// only reachable by name.
var Table = []coin.SeriesDefinition{
	{Name: "1 Gold", Denomination: GoldDollar, StartYear: 1849, EndYear: 1889},
	{Name: "Proof 1 Gold", Denomination: GoldDollar, Proof: true, StartYear: 1854, EndYear: 1889},
	{Name: "2 Gold", Denomination: QuarterEagle, StartYear: 1796, EndYear: 1907},
	{Name: "Proof 2 Gold", Denomination: QuarterEagle, Proof: true, StartYear: 1821, EndYear: 1907},
	{Name: "2 Indians", Denomination: QuarterEagle, StartYear: 1908, EndYear: 1929},
	{Name: "3 Gold", Denomination: ThreeDollar, StartYear: 1854, EndYear: 1889},
	{Name: "Proof 3 Gold", Denomination: ThreeDollar, Proof: true, StartYear: 1854, EndYear: 1889},
	{Name: "4 Gold Stellas", Denomination: Stella, StartYear: 1879, EndYear: 1880},
	{Name: "5 Gold", Denomination: HalfEagle, StartYear: 1795, EndYear: 1908},
	{Name: "Proof 5 Gold", Denomination: HalfEagle, Proof: true, StartYear: 1829, EndYear: 1907},
	{Name: "5 Indians", Denomination: HalfEagle, StartYear: 1908, EndYear: 1929},
	{Name: "10 Gold", Denomination: Eagle, StartYear: 1795, EndYear: 1907},
	{Name: "Proof 10 Gold", Denomination: Eagle, Proof: true, StartYear: 1804, EndYear: 1907},
	{Name: "10 Indians", Denomination: Eagle, StartYear: 1907, EndYear: 1933},
	{Name: "20 Gold", Denomination: DoubleEagle, StartYear: 1849, EndYear: 1907},
	{Name: "Proof 20 Gold", Denomination: DoubleEagle, Proof: true, StartYear: 1859, EndYear: 1907},
	{Name: "20 St Gaudens", Denomination: DoubleEagle, StartYear: 1907, EndYear: 1932},
	{Name: "Early Dollars", Denomination: SilverDollar, StartYear: 1794, EndYear: 1804},
	{Name: "Liberty Seated Dollars", Denomination: SilverDollar, StartYear: 1836, EndYear: 1873},
	{Name: "Trade Dollars", Denomination: SilverDollar, StartYear: 1873, EndYear: 1885},
	{Name: "Morgan Dollars", Denomination: SilverDollar, StartYear: 1878, EndYear: 1921},
	{Name: "Proof Morgan Dollars", Denomination: SilverDollar, Proof: true, StartYear: 1878, EndYear: 1921},
	{Name: "Proof Like Morgan Dollars", Denomination: SilverDollar, Proof: true, StartYear: 1878, EndYear: 1921},
	{Name: "DMPL Morgan Dollars", Denomination: SilverDollar, Proof: true, StartYear: 1878, EndYear: 1921},
	{Name: "GSA Morgan Dollars", Denomination: SilverDollar, Proof: true, StartYear: 1878, EndYear: 1891},
	{Name: "Peace Dollars", Denomination: SilverDollar, StartYear: 1921, EndYear: 1935},
	{Name: "Eisenhower Dollars", Denomination: SilverDollar, StartYear: 1971, EndYear: 1978},
	{Name: "Susan B Anthony Dollars", Denomination: SilverDollar, StartYear: 1979, EndYear: 1999},
	{Name: "Sacagawea Dollars", Denomination: SilverDollar, StartYear: 2000},
	{Name: "Presidential Dollars", Denomination: SilverDollar, StartYear: 2007},
	{Name: "Early Halves", Denomination: Half, StartYear: 1794, EndYear: 1807},
	{Name: "Bust Halves", Denomination: Half, StartYear: 1807, EndYear: 1839},
	{Name: "Liberty Seated Halves", Denomination: Half, StartYear: 1839, EndYear: 1891},
	{Name: "Proof Liberty Seated Halves", Denomination: Half, Proof: true, StartYear: 1839, EndYear: 1891},
	{Name: "Barber Halves", Denomination: Half, StartYear: 1892, EndYear: 1915},
	{Name: "Proof Barber Halves", Denomination: Half, Proof: true, StartYear: 1892, EndYear: 1915},
	{Name: "Walking Liberty Halves", Denomination: Half, StartYear: 1916, EndYear: 1947},
	{Name: "Proof WalkingLiberty Halves", Denomination: Half, Proof: true, StartYear: 1936, EndYear: 1942},
	{Name: "Franklin Halves", Denomination: Half, StartYear: 1948, EndYear: 1963},
	{Name: "Full Bell LinesFranklin Halves", Denomination: Half, StartYear: 1948, EndYear: 1963},
	{Name: "Proof Franklin Halves", Denomination: Half, Proof: true, StartYear: 1950, EndYear: 1963},
	{Name: "Kennedy Halves", Denomination: Half, StartYear: 1964},
	{Name: "Bust Quarters", Denomination: Quarter, StartYear: 1796, EndYear: 1838},
	{Name: "Liberty Seated Quarters", Denomination: Quarter, StartYear: 1838, EndYear: 1891},
	{Name: "Proof LibertySeated Quarters", Denomination: Quarter, Proof: true, StartYear: 1842, EndYear: 1891},
	{Name: "Barber Quarters", Denomination: Quarter, StartYear: 1892, EndYear: 1916},
	{Name: "Proof Barber Quarters", Denomination: Quarter, Proof: true, StartYear: 1892, EndYear: 1915},
	{Name: "Standing Liberty Quarters", Denomination: Quarter, StartYear: 1916, EndYear: 1930},
	{Name: "Full Head StandingLiberty Quarters", Denomination: Quarter, StartYear: 1916, EndYear: 1930},
	{Name: "Washington Quarters", Denomination: Quarter, StartYear: 1932},
	{Name: "Proof WashingtonQuarters", Denomination: Quarter, Proof: true, StartYear: 1936},
	{Name: "Bust Dimes", Denomination: Dime, StartYear: 1796, EndYear: 1837},
	{Name: "Liberty Seated Dimes", Denomination: Dime, StartYear: 1837, EndYear: 1891},
	{Name: "Proof Liberty Seated Dimes", Denomination: Dime, Proof: true, StartYear: 1837, EndYear: 1891},
	{Name: "Barber Dimes", Denomination: Dime, StartYear: 1892, EndYear: 1916},
	{Name: "Proof Barber Dimes", Denomination: Dime, Proof: true, StartYear: 1892, EndYear: 1915},
	{Name: "Mercury Dimes", Denomination: Dime, StartYear: 1916, EndYear: 1945},
	{Name: "Proof Mercury Dimes", Denomination: Dime, Proof: true, StartYear: 1936, EndYear: 1942},
	{Name: "Full Band Mercury Dimes", Denomination: Dime, StartYear: 1916, EndYear: 1945},
	{Name: "Roosevelt Dimes", Denomination: Dime, StartYear: 1946},
	{Name: "Proof Roosevelt Dimes", Denomination: Dime, Proof: true, StartYear: 1950},
	{Name: "Full TorchRoosevelt Dimes", Denomination: Dime, StartYear: 1946},
	{Name: "Shield Nickels", Denomination: Nickel, StartYear: 1866, EndYear: 1883},
	{Name: "Proof Shield Nickels", Denomination: Nickel, Proof: true, StartYear: 1866, EndYear: 1883},
	{Name: "Liberty Nickels", Denomination: Nickel, StartYear: 1883, EndYear: 1913},
	{Name: "Proof Liberty Nickels", Denomination: Nickel, Proof: true, StartYear: 1883, EndYear: 1913},
	{Name: "Buffalo Nickels", Denomination: Nickel, StartYear: 1913, EndYear: 1938},
	{Name: "Proof Buffalo Nickels", Denomination: Nickel, Proof: true, StartYear: 1913, EndYear: 1937},
	{Name: "Jefferson Nickels", Denomination: Nickel, StartYear: 1938},
	{Name: "Proof Jefferson Nickels", Denomination: Nickel, Proof: true, StartYear: 1938},
	{Name: "Full StepJefferson Nickels", Denomination: Nickel, StartYear: 1938},
	{Name: "Large Cents", Denomination: Cent, StartYear: 1793, EndYear: 1857},
	{Name: "Flying Eagle Cents", Denomination: Cent, StartYear: 1856, EndYear: 1858},
	{Name: "Indian Cents", Denomination: Cent, StartYear: 1859, EndYear: 1909},
	{Name: "Proof Indian Cents", Denomination: Cent, Proof: true, StartYear: 1859, EndYear: 1909},
	{Name: "Lincoln Cents", Denomination: Cent, StartYear: 1909, EndYear: 1933},
	{Name: "Modern Lincoln Cents", Denomination: Cent, StartYear: 1934},
	{Name: "Proof Lincoln Cents", Denomination: Cent, Proof: true, StartYear: 1909},
	{Name: "Silver Commemoratives", StartYear: 1892, EndYear: 1954},
	{Name: "Gold Commemoratives", StartYear: 1903, EndYear: 1926},
	{Name: "Modern CommemsHalves", StartYear: 1982},
	{Name: "Modern CommemsDollars", StartYear: 1983},
	{Name: "Modern Commems5 Gold", StartYear: 1986},
	{Name: "Modern Commems10 Gold", StartYear: 1984},
	{Name: "Half Cents", Denomination: HalfCent, StartYear: 1793, EndYear: 1857},
	{Name: "Two Cents", Denomination: TwoCent, StartYear: 1864, EndYear: 1872},
	{Name: "Proof Two Cents", Denomination: TwoCent, Proof: true, StartYear: 1864, EndYear: 1873},
	{Name: "Three Cents Silver", Denomination: ThreeCent, StartYear: 1851, EndYear: 1872},
	{Name: "Proof Three Cents Silver", Denomination: ThreeCent, Proof: true, StartYear: 1854, EndYear: 1873},
	{Name: "Three Cents Nickel", Denomination: ThreeCent, StartYear: 1865, EndYear: 1889},
	{Name: "Proof Three Cents Nickel", Denomination: ThreeCent, Proof: true, StartYear: 1865, EndYear: 1889},
	{Name: "Half Dimes", Denomination: Nickel, StartYear: 1794, EndYear: 1873},
	{Name: "Twenty Cents", Denomination: TwentyCent, StartYear: 1875, EndYear: 1878},
	{Name: "Modern Eagles", StartYear: 1986},
	{Name: "Modern Buffaloes", StartYear: 2006},
	{Name: "America the BeautifulSilver", StartYear: 2010},
	{Name: "Signature Series", StartYear: 1983},
	{Name: "Proof Sets", Denomination: ProofSet, Proof: true, StartYear: 1936},
}
