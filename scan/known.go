package scan

// Common TCP service names, keyed by port. Names follow the IANA service
// name registry. Curated rather than generated; covers the default scan
// set and anything DescribePort is likely to be asked about.
var knownPorts = map[int]string{
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	53:    "domain",
	80:    "http",
	88:    "kerberos",
	110:   "pop3",
	111:   "sunrpc",
	119:   "nntp",
	135:   "epmap",
	139:   "netbios-ssn",
	143:   "imap",
	179:   "bgp",
	389:   "ldap",
	443:   "https",
	445:   "microsoft-ds",
	465:   "submissions",
	514:   "shell",
	587:   "submission",
	631:   "ipp",
	636:   "ldaps",
	873:   "rsync",
	993:   "imaps",
	995:   "pop3s",
	1433:  "ms-sql-s",
	1521:  "ncube-lm",
	2049:  "nfs",
	3128:  "ndl-aas",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	5432:  "postgresql",
	5672:  "amqp",
	5900:  "rfb",
	6379:  "redis",
	8080:  "http-alt",
	8443:  "pcsync-https",
	9200:  "wap-wsp",
	11211: "memcache",
	27017: "mongodb",
}
