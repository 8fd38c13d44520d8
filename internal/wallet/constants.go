package wallet

const (
	LogMsgGoldClamped     = "Gold debit exceeds balance, clamping to zero"
	LogMsgMaterialClamped = "Material debit exceeds balance, clamping to zero"
)
