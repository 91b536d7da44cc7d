package contracts

import "github.com/ethereum/go-ethereum/common/hexutil"

// ProxyCreationCode is the GnosisSafeProxy creation bytecode, as returned by
// ProxyFactory.proxyCreationCode(). CREATE2 address prediction hashes this
// code with the ABI-encoded singleton address appended as the constructor
// argument; it must match what the factory deploys byte for byte.
var ProxyCreationCode = hexutil.MustDecode("0x" +
	"608060405234801561001057600080fd5b506040516101e63803806101e68339" +
	"818101604052602081101561003357600080fd5b810190808051906020019092" +
	"9190505050600073ffffffffffffffffffffffffffffffffffffffff168173ff" +
	"ffffffffffffffffffffffffffffffffffffff1614156100ca576040517f08c3" +
	"79a0000000000000000000000000000000000000000000000000000000008152" +
	"6004018080602001828103825260228152602001806101c46022913960400191" +
	"505060405180910390fd5b806000806101000a81548173ffffffffffffffffff" +
	"ffffffffffffffffffffff021916908373ffffffffffffffffffffffffffffff" +
	"ffffffffff1602179055505060ab806101196000396000f3fe608060405273ff" +
	"ffffffffffffffffffffffffffffffffffffff600054167fa619486e00000000" +
	"0000000000000000000000000000000000000000000000006000351415605057" +
	"8060005260206000f35b3660008037600080366000845af43d6000803e600081" +
	"14156070573d6000fd5b3d6000f3fea2646970667358221220d1429297349653" +
	"a4918076d650332de1a1068c5f3e07c5c82360c277770b955264736f6c634300" +
	"07060033496e76616c69642073696e676c65746f6e2061646472657373207072" +
	"6f7669646564")
