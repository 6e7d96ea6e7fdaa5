package pattern_test

import (
	"time"
)

// samplePage mirrors the markup of a bitsearch.to result page.
const samplePage = `
<html><body>
<h3><a href="/torrent/5cb8afc48700981f3e5b00c4">ubuntu-19.04-desktop-amd64.iso</a></h3>
Other/DiskImage 1.95 GB 4/18/2019
28 seeders 41 leechers 1403 downloads
<a href="magnet:?xt=urn:btih:D540FC48EB12F2833163EED6421D449DD8F1CE1F">Magnet</a>

<h3><a href="/torrent/63f864e1ae697358dc80e874">ubuntu-22.04.2-desktop-amd64.iso</a></h3>
Other/DiskImage 4.59 GB 2/24/2023
177 seeders 331 leechers 5833 downloads
<a href="magnet:?xt=urn:btih:A7838B75C42B612DA3B6CC99BEED4ECB2D04CFF2">Magnet</a>
</body></html>
`

var utc = time.FixedZone("test", 0)
