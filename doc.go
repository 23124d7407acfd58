/*
Package ffxradix implements FFX[radix] format-preserving encryption: strings over
an alphabet of 2 to 62 symbols are encrypted to strings of the same length and
alphabet, using a balanced 10 round Feistel network keyed with AES.

The FFX Mode of Operation for Format-Preserving Encryption:
http://csrc.nist.gov/groups/ST/toolkit/BCM/documents/proposedmodes/ffx/ffx-spec.pdf

This package itself has nothing, the ffx sub-package contains the API and
fpeutils the radix codec it is built on.

*/
package ffxradix
