/*
Package cmdargs parses contract call parameters and transaction signers given
as positional command line arguments.
*/
package cmdargs

import (
	"github.com/urfave/cli"
)

// ParamsParsingDoc describes the parameter syntax, it's appended to the
// descriptions of commands accepting contract call arguments.
const ParamsParsingDoc = `   Every argument is a contract parameter. Its type can be given explicitly
   with "type:value" syntax, the type being one of 'signature', 'bool', 'int',
   'hash160', 'hash256', 'bytes', 'key', 'string' or 'filebytes' (bytes read
   from the file named after the colon). Otherwise the type is inferred from
   the value:
    - decimal integers are 'int'
    - 'nil' is a Null (Any type) parameter
    - 'true' and 'false' are 'bool'
    - Neo addresses and 20-byte hex strings are 'hash160'
    - hex-encoded public keys are 'key'
    - 32-byte hex strings are 'hash256'
    - 64-byte hex strings are 'signature'
    - other hex strings are 'bytes'
    - anything else is a 'string'

   A backslash escapes the colon in implicitly typed strings, '\\' is a
   literal backslash. Arrays are given with space-separated '[' and ']'
   around the elements, they can be nested.

   Examples:
    * 'int:42' and '42' are the integer 42
    * 'nil' is a Null parameter
    * 'dead' is the byte array 0xdead, 'string:dead' is a string
    * 'filebytes:data.bin' is the content of data.bin
    * 'NSiVJYZej4XsxG5CUpdwn7VRQk8iiiDMPM' is a hash160
    * 'string\:string' is the string 'string:string'
    * '[ a [ b c ] ]' is an array of the string 'a' and an array of two strings
    * '[ ]' is an empty array`

// SignersParsingDoc describes the signer syntax.
const SignersParsingDoc = `   Signers follow the '--' separator as signer[:scope[,scope...]] where the
   signer is a Neo address or a hex-encoded LE script hash (with or without
   '0x') and the scope is one of:
    * 'None' - the signer only pays fees
    * 'CalledByEntry' - the witness is valid for the entry script and the
      contracts it calls directly (the default)
    * 'Global' - the witness is valid everywhere, it can't be combined with
      other scopes
    * 'CustomContracts:<hash>[:<hash>...]' - the witness is valid for the
      listed contracts
    * 'CustomGroups:<key>[:<key>...]' - the witness is valid for contracts
      of the listed groups (compressed hex-encoded public keys)

   The first signer is the sender. Without signers the sender account is
   used with CalledByEntry scope.

   Examples:
    * 'NNQk4QXsxvsrr3GSozoWBUxEmfag7B6hz5'
    * 'NVquyZHoPirw6zAEPvY1ZezxM493zMWQqs:Global'
    * '0x0000000009070e030d0f0e020d0c06050e030c02:None'
    * '0000000009070e030d0f0e020d0c06050e030c02:CalledByEntry,` +
	`CustomContracts:1011120009070e030d0f0e020d0c06050e030c02'`

// EnsureNone returns an error if there are any positional arguments present.
// It can be used to check for them in commands that don't accept arguments.
func EnsureNone(ctx *cli.Context) *cli.ExitError {
	if ctx.Args().Present() {
		return cli.NewExitError("additional arguments given while this command expects none", 1)
	}
	return nil
}
