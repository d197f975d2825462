package abi

// safeABI holds the Safe singleton methods called by this node
const safeABI = `[
  {"type":"function","name":"execTransaction","stateMutability":"payable","inputs":[
    {"name":"to","type":"address"},
    {"name":"value","type":"uint256"},
    {"name":"data","type":"bytes"},
    {"name":"operation","type":"uint8"},
    {"name":"safeTxGas","type":"uint256"},
    {"name":"baseGas","type":"uint256"},
    {"name":"gasPrice","type":"uint256"},
    {"name":"gasToken","type":"address"},
    {"name":"refundReceiver","type":"address"},
    {"name":"signatures","type":"bytes"}],
   "outputs":[{"name":"success","type":"bool"}]},
  {"type":"function","name":"setup","stateMutability":"nonpayable","inputs":[
    {"name":"_owners","type":"address[]"},
    {"name":"_threshold","type":"uint256"},
    {"name":"to","type":"address"},
    {"name":"data","type":"bytes"},
    {"name":"fallbackHandler","type":"address"},
    {"name":"paymentToken","type":"address"},
    {"name":"payment","type":"uint256"},
    {"name":"paymentReceiver","type":"address"}],
   "outputs":[]}
]`

// proxyFactoryABI holds the proxy factory deployment method
const proxyFactoryABI = `[
  {"type":"function","name":"createProxyWithNonce","stateMutability":"nonpayable","inputs":[
    {"name":"_singleton","type":"address"},
    {"name":"initializer","type":"bytes"},
    {"name":"saltNonce","type":"uint256"}],
   "outputs":[{"name":"proxy","type":"address"}]}
]`

// multiSendABI holds the batching entry point shared by MultiSend and MultiSendCallOnly
const multiSendABI = `[
  {"type":"function","name":"multiSend","stateMutability":"payable","inputs":[
    {"name":"transactions","type":"bytes"}],
   "outputs":[]}
]`

const (
	methodExecTransaction      = "execTransaction"
	methodSetup                = "setup"
	methodCreateProxyWithNonce = "createProxyWithNonce"
	methodMultiSend            = "multiSend"
)
