/*
Package smartcontract builds VM scripts used by transactions: entry scripts
calling contract methods (see Builder), standard single and multisignature
verification scripts and their invocation counterparts. It also provides
the Parameter type, the JSON representation of contract arguments used by
RPC invocations, which can be parsed from strings given on the command line.
*/
package smartcontract
