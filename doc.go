// Package midoricofb documents the Midori-64/COFB authenticated-encryption
// module. The cryptographic engine lives in the nibble, gf, midori and cofb
// packages; cmd/cofbmidori is the command-line collaborator that drives
// them.
package midoricofb
