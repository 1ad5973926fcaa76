package shaders

// VertexSource is the position-passthrough vertex shader for the demo
// triangle.
const VertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos, 1.0);
}`

// FragmentSource colors every fragment with the ourColor uniform.
const FragmentSource = `#version 330 core
out vec4 FragColor;
uniform vec4 ourColor;
void main()
{
    FragColor = ourColor;
}`
